package classify

import (
	"regexp"

	"recipe-importer/internal/pkg/common"
)

// 每個 enum 值對應一張標準關鍵字／正則表，順序即宣告順序（先命中先贏）
// 輸入一律先轉小寫，樣式不帶 (?i)

// courseRule 餐段判定規則
type courseRule struct {
	course  common.Course
	pattern *regexp.Regexp
}

var courseRules = []courseRule{
	{common.CourseBreakfast, regexp.MustCompile(`breakfast|omelet|frittata|oatmeal|granola|french toast|scrambled`)},
	{common.CourseLunch, regexp.MustCompile(`\blunch\b`)},
	{common.CourseDinner, regexp.MustCompile(`\bdinner\b|\bsupper\b|main course|main dish`)},
	{common.CourseDessert, regexp.MustCompile(`dessert|\bcake\b|cookie|brownie|pudding|ice cream|cheesecake|\btart\b|\bpie\b`)},
	{common.CourseAppetizer, regexp.MustCompile(`appetizer|starter|hors d'oeuvre|finger food`)},
	{common.CourseSoup, regexp.MustCompile(`soup|stew\b|chowder|bisque|broth`)},
	{common.CourseSalad, regexp.MustCompile(`salad|\bslaw\b`)},
	{common.CourseSide, regexp.MustCompile(`side dish|\bside\b`)},
	{common.CourseSnack, regexp.MustCompile(`snack|trail mix|energy ball`)},
	{common.CourseBeverage, regexp.MustCompile(`beverage|drink|smoothie|cocktail|juice|latte|lemonade`)},
	{common.CourseStreetFood, regexp.MustCompile(`street food|food truck`)},
	{common.CourseBrunch, regexp.MustCompile(`brunch`)},
}

// 餐段的時段備援樣式
var (
	morningPattern = regexp.MustCompile(`\bmorning\b|\bsunrise\b`)
	eveningPattern = regexp.MustCompile(`\bevening\b|\btonight\b|\bweeknight\b`)
)

// dishFormRule 菜式型態判定規則
type dishFormRule struct {
	form    common.DishForm
	pattern *regexp.Regexp
}

var dishFormRules = []dishFormRule{
	{common.DishFormBowlMeal, regexp.MustCompile(`\bbowl\b|poke|ramen|\bpho\b|bibimbap`)},
	{common.DishFormHandheld, regexp.MustCompile(`taco|burrito|sandwich|burger|\bwrap\b|slider|hot dog|quesadilla`)},
	{common.DishFormDumplingStuffed, regexp.MustCompile(`dumpling|gyoza|pierogi|ravioli|stuffed|empanada|wonton`)},
	{common.DishFormSkewer, regexp.MustCompile(`skewer|kebab|kabob|satay|yakitori`)},
	{common.DishFormPancakeFritter, regexp.MustCompile(`pancake|fritter|latke|crepe|waffle`)},
	{common.DishFormPastry, regexp.MustCompile(`croissant|pastry|danish|galette|puff|turnover`)},
	{common.DishFormSpreadDip, regexp.MustCompile(`hummus|\bdip\b|spread|guacamole|tapenade|pâté|pate\b`)},
	{common.DishFormDrinkable, regexp.MustCompile(`smoothie|shake|juice|latte|cocktail|lemonade|punch`)},
	{common.DishFormBakedDish, regexp.MustCompile(`casserole|lasagna|gratin|baked|\bbake\b|pot pie`)},
	{common.DishFormSauceOverBase, regexp.MustCompile(`curry|pasta|spaghetti|noodle|bolognese|alfredo|over rice|marinara`)},
	{common.DishFormPlatedEntree, regexp.MustCompile(`steak|\broast\b|fillet|filet|cutlet|chop\b`)},
}

// cookingMethodKeywords 烹調方式關鍵字表（只掃描步驟文字，集合而非單選）
var cookingMethodKeywords = []struct {
	method   common.CookingMethod
	keywords []string
}{
	{common.MethodRawMarinated, []string{"marinate", "marinade", "ceviche", "no-cook", "no cook"}},
	{common.MethodBoiledSimmered, []string{"boil", "simmer", "poach", "blanch"}},
	{common.MethodSteamed, []string{"steam"}},
	{common.MethodSauteedStirfried, []string{"sauté", "saute", "stir-fry", "stir fry", "stirfry"}},
	{common.MethodRoastedBaked, []string{"roast", "bake", "oven"}},
	{common.MethodGrilledCharred, []string{"grill", "broil", "barbecue", "char the", "charred"}},
	{common.MethodFriedDeep, []string{"deep-fry", "deep fry", "deep fried", "deep-fried"}},
	{common.MethodFriedShallow, []string{"pan-fry", "pan fry", "shallow fry", "sear"}},
	{common.MethodFriedAir, []string{"air fry", "air-fry", "air fryer"}},
	{common.MethodBraisedStewed, []string{"braise", "stew", "slow cook", "slow-cook", "slow cooker"}},
	{common.MethodFermentedCured, []string{"ferment", "pickle", "brine", "cure for", "curing"}},
	{common.MethodBlendedEmulsified, []string{"blend", "purée", "puree", "emulsif", "food processor"}},
	{common.MethodFrozenChilled, []string{"freeze", "frozen", "chill", "refrigerate until"}},
}

// regionCuisineKeywords 明示 cuisine 欄位的文化圈關鍵字表
var regionCuisineKeywords = []struct {
	region   common.Region
	keywords []string
}{
	{common.RegionFrench, []string{"french", "france", "provençal", "provencal"}},
	{common.RegionItalian, []string{"italian", "italy", "sicilian", "tuscan"}},
	{common.RegionMexican, []string{"mexican", "mexico", "tex-mex"}},
	{common.RegionChinese, []string{"chinese", "china", "cantonese", "sichuan", "szechuan"}},
	{common.RegionJapanese, []string{"japanese", "japan"}},
	{common.RegionKorean, []string{"korean", "korea"}},
	{common.RegionThai, []string{"thai", "thailand"}},
	{common.RegionVietnamese, []string{"vietnamese", "vietnam"}},
	{common.RegionIndian, []string{"indian", "india", "punjabi", "south indian"}},
	{common.RegionGreek, []string{"greek", "greece"}},
	{common.RegionSpanish, []string{"spanish", "spain", "basque"}},
	{common.RegionMiddleEastern, []string{"middle eastern", "lebanese", "persian", "israeli", "turkish"}},
	{common.RegionAmerican, []string{"american", "southern", "cajun", "creole"}},
}

// flavorProfilePatterns 風味輪廓樣式（對食材文字各自獨立檢查，可複選）
var flavorProfilePatterns = []struct {
	profile common.FlavorProfile
	pattern *regexp.Regexp
}{
	{common.FlavorSpicyHot, regexp.MustCompile(`chili|chile|chilli|sriracha|cayenne|jalape|gochujang|hot sauce|pepper flakes|habanero`)},
	{common.FlavorBrightAcidic, regexp.MustCompile(`lemon|lime|vinegar|yuzu|tamarind|citrus|sumac`)},
	{common.FlavorSavoryUmami, regexp.MustCompile(`soy sauce|miso|parmesan|mushroom|anchov|fish sauce|tomato paste|worcestershire`)},
	{common.FlavorSweetRich, regexp.MustCompile(`sugar|honey|maple|caramel|chocolate|condensed milk`)},
	{common.FlavorSmokyEarthy, regexp.MustCompile(`smoked|smoky|chipotle|bacon|cumin|charred|liquid smoke`)},
}

// dietaryTagPatterns 飲食標籤的明示樣式（對可搜尋文字）
var dietaryTagPatterns = []struct {
	tag     common.DietaryTag
	pattern *regexp.Regexp
}{
	{common.DietVegetarian, regexp.MustCompile(`vegetarian`)},
	{common.DietVegan, regexp.MustCompile(`vegan`)},
	{common.DietGlutenFree, regexp.MustCompile(`gluten[- ]free`)},
	{common.DietDairyFree, regexp.MustCompile(`dairy[- ]free`)},
	{common.DietLowSodium, regexp.MustCompile(`low[- ]sodium`)},
	{common.DietLowFat, regexp.MustCompile(`low[- ]fat`)},
	{common.DietHighProtein, regexp.MustCompile(`high[- ]protein|protein[- ]packed`)},
	{common.DietKeto, regexp.MustCompile(`\bketo\b|ketogenic`)},
	{common.DietPaleo, regexp.MustCompile(`paleo`)},
	{common.DietWhole30, regexp.MustCompile(`whole\s?30`)},
	{common.DietPescatarian, regexp.MustCompile(`pescatarian`)},
}

// 食材推導飲食標籤用的關鍵字組
var (
	meatKeywords = []string{
		"chicken", "beef", "pork", "lamb", "bacon", "sausage", "turkey",
		"ham", "veal", "duck", "prosciutto", "chorizo", "ground meat", "steak",
	}
	fishKeywords = []string{
		"fish", "salmon", "tuna", "shrimp", "prawn", "anchov", "crab",
		"lobster", "cod", "sardine", "scallop", "clam", "mussel", "oyster",
	}
	dairyKeywords = []string{
		"milk", "cheese", "butter", "cream", "yogurt", "ghee", "parmesan", "mozzarella",
	}
	eggKeywords = []string{"egg"}
)

// contextualTitlePattern 一鍋料理的標題樣式
var onePotPattern = regexp.MustCompile(`one pot|one pan|sheet pan`)

// ingredientDomainKeywords 食材主軸五桶關鍵字組
var ingredientDomainKeywords = []struct {
	domain   common.IngredientDomain
	keywords []string
}{
	{common.DomainProtein, []string{
		"chicken", "beef", "pork", "lamb", "turkey", "tofu", "tempeh",
		"fish", "salmon", "shrimp", "egg", "lentil", "chickpea", "bean",
	}},
	{common.DomainGrainStarch, []string{
		"rice", "pasta", "bread", "flour", "oat", "quinoa", "noodle",
		"tortilla", "couscous", "barley", "potato",
	}},
	{common.DomainVegetableForward, []string{
		"carrot", "onion", "spinach", "broccoli", "kale", "zucchini",
		"tomato", "cauliflower", "cabbage", "mushroom", "eggplant", "pepper",
	}},
	{common.DomainDairyBased, []string{
		"milk", "cheese", "cream", "yogurt", "butter", "ricotta", "mascarpone",
	}},
	{common.DomainFruitBased, []string{
		"apple", "banana", "berr", "mango", "peach", "pineapple", "orange", "pear",
	}},
}
