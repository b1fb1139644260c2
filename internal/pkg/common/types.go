package common

// ParsedRecipe 解析後的標準化食譜
// 注意：只有通過驗證的草稿才能成為 ParsedRecipe，不存在「無效但已建立」的狀態
type ParsedRecipe struct {
	Title          string                  `json:"title"`
	Description    string                  `json:"description,omitempty"`
	Ingredients    []string                `json:"ingredients"`
	Instructions   []string                `json:"instructions"`
	PrepTime       *int                    `json:"prep_time,omitempty"`  // 分鐘
	CookTime       *int                    `json:"cook_time,omitempty"`  // 分鐘
	TotalTime      *int                    `json:"total_time,omitempty"` // 分鐘
	Servings       *int                    `json:"servings,omitempty"`
	Cuisine        string                  `json:"cuisine,omitempty"`
	Course         string                  `json:"course,omitempty"`
	Difficulty     string                  `json:"difficulty,omitempty"`
	ImageURL       string                  `json:"image_url,omitempty"`
	SourceURL      string                  `json:"source_url,omitempty"`
	Author         string                  `json:"author,omitempty"`
	Nutrition      *Nutrition              `json:"nutrition,omitempty"`
	Tags           []string                `json:"tags,omitempty"`
	Classification *CulinaryClassification `json:"classification,omitempty"` // 事後附加，非驗證必要欄位
}

// Nutrition 營養成分（每份）
type Nutrition struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
	Sugar    *float64 `json:"sugar,omitempty"`
	Sodium   *float64 `json:"sodium,omitempty"`
}

// --- 料理分類 enum ---

// Course 餐段分類
type Course string

const (
	CourseBreakfast  Course = "breakfast"
	CourseLunch      Course = "lunch"
	CourseDinner     Course = "dinner"
	CourseDessert    Course = "dessert"
	CourseAppetizer  Course = "appetizer"
	CourseSoup       Course = "soup"
	CourseSalad      Course = "salad"
	CourseSide       Course = "side"
	CourseSnack      Course = "snack"
	CourseBeverage   Course = "beverage"
	CourseStreetFood Course = "street_food"
	CourseBrunch     Course = "brunch"
)

// DishForm 菜式型態
type DishForm string

const (
	DishFormBowlMeal        DishForm = "bowl_meal"
	DishFormHandheld        DishForm = "handheld"
	DishFormPlatedEntree    DishForm = "plated_entree"
	DishFormSauceOverBase   DishForm = "sauce_over_base"
	DishFormBakedDish       DishForm = "baked_dish"
	DishFormDumplingStuffed DishForm = "dumpling_stuffed"
	DishFormSkewer          DishForm = "skewer"
	DishFormPancakeFritter  DishForm = "pancake_fritter"
	DishFormPastry          DishForm = "pastry"
	DishFormSpreadDip       DishForm = "spread_dip"
	DishFormDrinkable       DishForm = "drinkable"
)

// CookingMethod 烹調方式
type CookingMethod string

const (
	MethodRawMarinated      CookingMethod = "raw_marinated"
	MethodBoiledSimmered    CookingMethod = "boiled_simmered"
	MethodSteamed           CookingMethod = "steamed"
	MethodSauteedStirfried  CookingMethod = "sauteed_stirfried"
	MethodRoastedBaked      CookingMethod = "roasted_baked"
	MethodGrilledCharred    CookingMethod = "grilled_charred"
	MethodFriedDeep         CookingMethod = "fried_deep"
	MethodFriedShallow      CookingMethod = "fried_shallow"
	MethodFriedAir          CookingMethod = "fried_air"
	MethodBraisedStewed     CookingMethod = "braised_stewed"
	MethodFermentedCured    CookingMethod = "fermented_cured"
	MethodBlendedEmulsified CookingMethod = "blended_emulsified"
	MethodFrozenChilled     CookingMethod = "frozen_chilled"
)

// Region 料理文化圈
type Region string

const (
	RegionFrench        Region = "french"
	RegionItalian       Region = "italian"
	RegionMexican       Region = "mexican"
	RegionChinese       Region = "chinese"
	RegionJapanese      Region = "japanese"
	RegionKorean        Region = "korean"
	RegionThai          Region = "thai"
	RegionVietnamese    Region = "vietnamese"
	RegionIndian        Region = "indian"
	RegionGreek         Region = "greek"
	RegionSpanish       Region = "spanish"
	RegionMiddleEastern Region = "middle_eastern"
	RegionAmerican      Region = "american"
)

// FlavorProfile 風味輪廓
type FlavorProfile string

const (
	FlavorSpicyHot     FlavorProfile = "spicy_hot"
	FlavorBrightAcidic FlavorProfile = "bright_acidic"
	FlavorSavoryUmami  FlavorProfile = "savory_umami"
	FlavorSweetRich    FlavorProfile = "sweet_rich"
	FlavorSmokyEarthy  FlavorProfile = "smoky_earthy"
)

// DietaryTag 飲食標籤
type DietaryTag string

const (
	DietVegetarian  DietaryTag = "vegetarian"
	DietVegan       DietaryTag = "vegan"
	DietGlutenFree  DietaryTag = "gluten_free"
	DietDairyFree   DietaryTag = "dairy_free"
	DietLowSodium   DietaryTag = "low_sodium"
	DietLowFat      DietaryTag = "low_fat"
	DietHighProtein DietaryTag = "high_protein"
	DietKeto        DietaryTag = "keto"
	DietPaleo       DietaryTag = "paleo"
	DietWhole30     DietaryTag = "whole30"
	DietPescatarian DietaryTag = "pescatarian"
)

// ContextualTag 情境標籤
type ContextualTag string

const (
	ContextQuick       ContextualTag = "quick"
	ContextFamilyStyle ContextualTag = "family_style"
	ContextSingleServe ContextualTag = "single_serve"
	ContextOnePot      ContextualTag = "one_pot"
	ContextNoCook      ContextualTag = "no_cook"
)

// IngredientDomain 食材主軸
type IngredientDomain string

const (
	DomainProtein          IngredientDomain = "protein"
	DomainGrainStarch      IngredientDomain = "grain_starch"
	DomainVegetableForward IngredientDomain = "vegetable_forward"
	DomainDairyBased       IngredientDomain = "dairy_based"
	DomainFruitBased       IngredientDomain = "fruit_based"
	DomainMixed            IngredientDomain = "mixed"
)

// FlavorDimensions 六個獨立的風味強度分數（0~5）
type FlavorDimensions struct {
	Spice  int `json:"spice"`
	Acid   int `json:"acid"`
	Fat    int `json:"fat"`
	Umami  int `json:"umami"`
	Sweet  int `json:"sweet"`
	Bitter int `json:"bitter"`
}

// CulinaryClassification 料理分類結果
// 純值物件，由 ParsedRecipe 計算而得，可隨時重新計算，不會自我變更
// 每個面向都可能缺席，缺席本身就是有效的最終答案
type CulinaryClassification struct {
	Course           Course            `json:"course,omitempty"`
	DishForm         DishForm          `json:"dish_form,omitempty"`
	CookingMethods   []CookingMethod   `json:"cooking_methods,omitempty"`
	Regions          []Region          `json:"regions,omitempty"`
	FlavorProfiles   []FlavorProfile   `json:"flavor_profiles,omitempty"`
	FlavorDimensions *FlavorDimensions `json:"flavor_dimensions,omitempty"`
	DietaryTags      []DietaryTag      `json:"dietary_tags,omitempty"`
	ContextualTags   []ContextualTag   `json:"contextual_tags,omitempty"`
	IngredientDomain IngredientDomain  `json:"ingredient_domain,omitempty"`
}
