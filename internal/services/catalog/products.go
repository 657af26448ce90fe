package catalog

import "github.com/saahla-dz/saahla_be/internal/models"

// Products is the fixed set of ready-made digital products offered on
// the marketplace.
var Products = []models.Product{
	{
		ID:       1,
		Title:    "قالب متجر إلكتروني احترافي",
		Category: "مواقع جاهزة",
		Price:    15000,
		OldPrice: 20000,
		Rating:   4.8,
		Images: []string{
			"https://placehold.co/800x600/2E3D80/ffffff?text=Main+View",
			"https://placehold.co/800x600/3c4d99/ffffff?text=Products+Page",
			"https://placehold.co/800x600/5063b3/ffffff?text=Shopping+Cart",
			"https://placehold.co/800x600/6b7fcc/ffffff?text=Admin+Dashboard",
		},
		Description: "قالب متكامل مع جميع المميزات اللازمة لبدء متجرك الإلكتروني. تصميم عصري ومتجاوب مع جميع الأجهزة، لوحة تحكم سهلة الاستخدام، ودعم فني متكامل. مبني بأحدث التقنيات لضمان سرعة الأداء. مثالي لعرض منتجاتك بطريقة احترافية وجذابة لزيادة المبيعات.",
		Sales:       125,
		Reviews: []models.ProductReview{
			{Name: "علي حسن", Rating: 5, Comment: "قالب رائع وسهل التخصيص. الدعم الفني كان ممتازاً ومتجاوباً جداً. أنصح به بشدة!"},
			{Name: "فاطمة الزهراء", Rating: 4, Comment: "تصميم جميل جداً، لكن واجهت بعض الصعوبة في تركيب إضافة الدفع. بشكل عام منتج جيد."},
			{Name: "يوسف إبراهيم", Rating: 5, Comment: "من أفضل القوالب التي استخدمتها. كل شيء يعمل كما هو متوقع والتوثيق واضح."},
		},
	},
	{
		ID:       2,
		Title:    "مجموعة شعارات احترافية",
		Category: "تصاميم جاهزة",
		Price:    8000,
		OldPrice: 10000,
		Rating:   5.0,
		Images: []string{
			"https://placehold.co/800x600/F28123/ffffff?text=Logo+Collection",
			"https://placehold.co/800x600/f3923a/ffffff?text=Tech+Logo",
			"https://placehold.co/800x600/f5a352/ffffff?text=Food+Logo",
			"https://placehold.co/800x600/f7b46a/ffffff?text=Real+Estate+Logo",
		},
		Description: "مجموعة تضم 50 شعار احترافي جاهز للاستخدام والتعديل. مثالية للشركات الناشئة والمشاريع الصغيرة التي تحتاج إلى هوية بصرية سريعة ومميزة. الملفات بصيغة AI و SVG قابلة للتعديل بالكامل.",
		Sales:       210,
		Reviews: []models.ProductReview{
			{Name: "خديجة مراد", Rating: 5, Comment: "وفرت علي الكثير من الوقت والجهد. الشعارات متنوعة وجميلة جداً."},
			{Name: "أمين بلقاسم", Rating: 5, Comment: "جودة عالية وتصاميم عصرية. قيمة ممتازة مقابل السعر."},
		},
	},
	{
		ID:       3,
		Title:    "كتاب عن التسويق الرقمي",
		Category: "كتب جاهزة",
		Price:    5000,
		Rating:   4.2,
		Images: []string{
			"https://placehold.co/800x600/2E3D80/ffffff?text=eBook+Cover",
			"https://placehold.co/800x600/3c4d99/ffffff?text=Chapter+1",
			"https://placehold.co/800x600/5063b3/ffffff?text=Infographics",
			"https://placehold.co/800x600/6b7fcc/ffffff?text=Conclusion",
		},
		Description: "دليل شامل للتسويق الرقمي للمبتدئين والمحترفين. يغطي الكتاب استراتيجيات SEO، التسويق عبر وسائل التواصل الاجتماعي، والحملات الإعلانية.",
		Sales:       88,
		Reviews: []models.ProductReview{
			{Name: "أحمد صالح", Rating: 4, Comment: "محتوى قيم ومفيد."},
		},
	},
	{
		ID:       4,
		Title:    "قوالب عروض تقديمية",
		Category: "قوالب جاهزة",
		Price:    12000,
		OldPrice: 15000,
		Rating:   4.7,
		Images: []string{
			"https://placehold.co/800x600/F28123/ffffff?text=Presentation",
			"https://placehold.co/800x600/f3923a/ffffff?text=Slide+1",
			"https://placehold.co/800x600/f5a352/ffffff?text=Slide+2",
			"https://placehold.co/800x600/f7b46a/ffffff?text=Slide+3",
		},
		Description: "20 قالب عروض تقديمية احترافية جاهزة للاستخدام على PowerPoint و Google Slides. تتميز بتصاميم عصرية ورسوم بيانية قابلة للتعديل.",
		Sales:       95,
		Reviews: []models.ProductReview{
			{Name: "نورة كريم", Rating: 5, Comment: "تصاميم حديثة واحترافية."},
		},
	},
	{
		ID:       5,
		Title:    "مجموعة أيقونات احترافية",
		Category: "رسوميات جاهزة",
		Price:    7000,
		Rating:   4.9,
		Images: []string{
			"https://placehold.co/800x600/2E3D80/ffffff?text=Icon+Set",
			"https://placehold.co/800x600/3c4d99/ffffff?text=Business+Icons",
			"https://placehold.co/800x600/5063b3/ffffff?text=Tech+Icons",
			"https://placehold.co/800x600/6b7fcc/ffffff?text=Medical+Icons",
		},
		Description: "500 أيقونة احترافية بصيغة PNG و SVG. تغطي مجالات مختلفة مثل الأعمال، التكنولوجيا، والتعليم.",
		Sales:       150,
		Reviews: []models.ProductReview{
			{Name: "سالم محمد", Rating: 5, Comment: "جودة عالية جداً ومجموعة شاملة."},
		},
	},
	{
		ID:       6,
		Title:    "سكريبت إدارة مهام",
		Category: "سكريبتات جاهزة",
		Price:    10000,
		Rating:   4.6,
		Images: []string{
			"https://placehold.co/800x600/F28123/ffffff?text=Task+Manager",
			"https://placehold.co/800x600/f3923a/ffffff?text=Dashboard",
			"https://placehold.co/800x600/f5a352/ffffff?text=Projects",
			"https://placehold.co/800x600/f7b46a/ffffff?text=Users",
		},
		Description: "نظام لإدارة المشاريع والمهام لفريق عملك. مبني بلغة PHP و MySQL. سهل التركيب والاستخدام.",
		Sales:       64,
		Reviews: []models.ProductReview{
			{Name: "شركة الابتكار", Rating: 4, Comment: "ساعدنا في تنظيم عملنا بشكل كبير."},
		},
	},
}

// ByID returns the catalog product with the given id.
func ByID(id int64) (models.Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Categories returns the distinct categories in catalog order.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range Products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
