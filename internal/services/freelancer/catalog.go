package freelancer

import "github.com/saahla-dz/saahla_be/internal/models"

// Catalog is the fixed set of showcase freelancers shipped with the
// platform. Entries keep their original numeric IDs.
var Catalog = []models.Freelancer{
	{
		ID:          1,
		Name:        "محمد أحمد",
		Title:       "مطور ويب متخصص",
		Rating:      4.8,
		Reviews:     42,
		Avatar:      models.Avatar{URL: "https://placehold.co/80x80/2E3D80/ffffff?text=M"},
		Description: "خبير في React و Node.js لبناء تطبيقات ويب متقدمة.",
		Skills:      []string{"React", "Node.js", "MongoDB", "GraphQL", "TypeScript"},
		Category:    "web",
		Subcategory: "webdev",
		Bio:         "مطور ويب بخبرة تزيد عن 5 سنوات في بناء حلول برمجية متكاملة للشركات الناشئة والكبرى. أركز على كتابة كود نظيف وقابل للتطوير، وأؤمن بأهمية تجربة المستخدم السلسة. شغوف بتحويل الأفكار إلى منتجات رقمية ناجحة.",
		Projects: []models.Project{
			{Title: "لوحة تحكم لمتجر", Img: "https://placehold.co/600x400/212B5A/ffffff?text=Project1"},
			{Title: "موقع تعريفي لشركة", Img: "https://placehold.co/600x400/212B5A/ffffff?text=Project2"},
			{Title: "تطبيق حجوزات فندقية", Img: "https://placehold.co/600x400/212B5A/ffffff?text=Project3"},
		},
	},
	{
		ID:          2,
		Name:        "سارة علي",
		Title:       "مصممة جرافيك محترفة",
		Rating:      5.0,
		Reviews:     28,
		Avatar:      models.Avatar{URL: "https://placehold.co/80x80/F28123/ffffff?text=S"},
		Description: "متخصصة في الهوية البصرية والتصميم التفاعلي باستخدام Figma.",
		Skills:      []string{"Adobe Illustrator", "Figma", "Photoshop", "Branding", "UI/UX"},
		Category:    "design",
		Subcategory: "ui",
		Bio:         "مصممة شغوفة بالتفاصيل والألوان. أساعد العلامات التجارية على التميز من خلال هويات بصرية فريدة وتجارب مستخدم لا تُنسى. أعمل بشكل وثيق مع العملاء لفهم رؤيتهم وتحويلها إلى تصاميم جذابة وفعالة.",
		Projects: []models.Project{
			{Title: "هوية بصرية لعلامة تجارية", Img: "https://placehold.co/600x400/D86B10/ffffff?text=Project1"},
			{Title: "تصميم واجهة تطبيق", Img: "https://placehold.co/600x400/D86B10/ffffff?text=Project2"},
		},
	},
	{
		ID:          3,
		Name:        "يوسف خالد",
		Title:       "مسوق رقمي وخبير SEO",
		Rating:      4.2,
		Reviews:     35,
		Avatar:      models.Avatar{URL: "https://placehold.co/80x80/2E3D80/ffffff?text=Y"},
		Description: "أساعدك على تصدر نتائج البحث وزيادة مبيعاتك عبر الإنترنت.",
		Skills:      []string{"SEO", "Google Ads", "Facebook Ads", "Content Marketing"},
		Category:    "marketing",
		Subcategory: "seo",
		Bio:         "خبير تسويق رقمي معتمد من جوجل. أمتلك خبرة واسعة في تحسين محركات البحث (SEO) وإدارة الحملات الإعلانية المدفوعة. أهدف إلى تحقيق نتائج ملموسة لعملائي من خلال استراتيجيات تسويقية مبنية على البيانات.",
		Projects: []models.Project{
			{Title: "حملة إعلانية ناجحة", Img: "https://placehold.co/600x400/212B5A/ffffff?text=Project1"},
		},
	},
	{
		ID:          4,
		Name:        "نورا بوعزة",
		Title:       "كاتبة محتوى إبداعي",
		Rating:      4.7,
		Reviews:     56,
		Avatar:      models.Avatar{URL: "https://placehold.co/80x80/F28123/ffffff?text=N"},
		Description: "كتابة مقالات تسويقية إبداعية تجذب القراء وتحقق الأهداف.",
		Skills:      []string{"كتابة محتوى", "SEO", "ترجمة", "Copywriting"},
		Category:    "writing",
		Subcategory: "copywriting",
		Bio:         "أصنع الكلمات التي تروي قصة علامتك التجارية وتتواصل مع جمهورك. متخصصة في كتابة المحتوى التسويقي والمقالات المتوافقة مع محركات البحث (SEO) التي تزيد من الوعي والتفاعل.",
		Projects: []models.Project{
			{Title: "محتوى لمدونة تقنية", Img: "https://placehold.co/600x400/D86B10/ffffff?text=Project1"},
			{Title: "كتابة إعلانات سوشيال ميديا", Img: "https://placehold.co/600x400/D86B10/ffffff?text=Project2"},
		},
	},
	{
		ID:          5,
		Name:        "عمر سالم",
		Title:       "مطور تطبيقات Flutter",
		Rating:      5.0,
		Reviews:     31,
		Avatar:      models.Avatar{URL: "https://placehold.co/80x80/2E3D80/ffffff?text=O"},
		Description: "أقوم ببناء تطبيقات هواتف احترافية وسريعة لكلا النظامين.",
		Skills:      []string{"Flutter", "React Native", "Dart", "Firebase"},
		Category:    "programming",
		Subcategory: "mobile",
		Bio:         "مطور تطبيقات محترف متخصص في Flutter. أقوم ببناء تطبيقات جميلة وعالية الأداء تعمل بسلاسة على أنظمة iOS و Android من قاعدة كود واحدة. أسعى دائمًا لتقديم أفضل تجربة مستخدم ممكنة.",
		Projects: []models.Project{
			{Title: "تطبيق توصيل طعام", Img: "https://placehold.co/600x400/212B5A/ffffff?text=Project1"},
			{Title: "تطبيق رياضي", Img: "https://placehold.co/600x400/212B5A/ffffff?text=Project2"},
		},
	},
	{
		ID:          6,
		Name:        "فاطمة بوضياف",
		Title:       "مصممة واجهات UI/UX",
		Rating:      4.3,
		Reviews:     19,
		Avatar:      models.Avatar{URL: "https://placehold.co/80x80/F28123/ffffff?text=F"},
		Description: "تصميم واجهات مستخدم سهلة وجميلة تضمن أفضل تجربة.",
		Skills:      []string{"Figma", "Sketch", "Adobe XD", "User Research"},
		Category:    "design",
		Subcategory: "ui",
		Bio:         "أصمم تجارب رقمية تتمحور حول الإنسان. أجمع بين البحث العميق للمستخدمين والتصميم الجذاب لإنشاء منتجات سهلة الاستخدام وممتعة. هدفي هو سد الفجوة بين أهداف العمل واحتياجات المستخدم.",
		Projects: []models.Project{
			{Title: "إعادة تصميم موقع إخباري", Img: "https://placehold.co/600x400/D86B10/ffffff?text=Project1"},
		},
	},
}
