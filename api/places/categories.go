package places

// Category ids accepted by the categories search parameter.
const (
	CATEGORY_RESTAURANT = "13065"
	CATEGORY_CAFE       = "13034"
	CATEGORY_BAR        = "13003"
	CATEGORY_FAST_FOOD  = "13145"
	CATEGORY_PIZZA      = "13350"
	CATEGORY_BREAKFAST  = "13274"
	CATEGORY_ASIAN      = "13072"
	CATEGORY_MEXICAN    = "13236"
)

// CategoryNames maps the known ids to display names.
var CategoryNames = map[string]string{
	CATEGORY_RESTAURANT: "Restaurant",
	CATEGORY_CAFE:       "Cafe",
	CATEGORY_BAR:        "Bar",
	CATEGORY_FAST_FOOD:  "Fast Food",
	CATEGORY_PIZZA:      "Pizza",
	CATEGORY_BREAKFAST:  "Breakfast",
	CATEGORY_ASIAN:      "Asian",
	CATEGORY_MEXICAN:    "Mexican",
}
