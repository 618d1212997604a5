package store

// DefaultUsers is the canonical seed: one admin and one editor. The
// credentials are demo-scope and compared as plain strings.
func DefaultUsers() []User {
	return []User{
		{
			ID:           "user-1",
			Username:     "admin",
			PasswordHash: "admin",
			Permissions:  []Permission{PermAdmin},
		},
		{
			ID:           "user-2",
			Username:     "editor",
			PasswordHash: "editor",
			Permissions:  []Permission{PermEditor},
		},
	}
}

// DefaultWebsiteData is the complete document a fresh installation
// starts from.
func DefaultWebsiteData() WebsiteData {
	return WebsiteData{
		Theme: Theme{
			PrimaryColor:   "#2f4b26",
			SecondaryColor: "#f0f4f8",
			CardColor:      "#ffffff",
			Font:           FontRoboto,
			Appearance:     AppearanceLight,
		},
		Content: WebsiteContent{
			Home: HomeContent{
				HeroTitle: LocalizedText{
					En: "Expert Accounting Services",
					Ar: "خدمات محاسبة متخصصة",
				},
				HeroSubtitle: LocalizedText{
					En: "Providing reliable and precise financial solutions to help your business grow.",
					Ar: "نقدم حلولاً مالية موثوقة ودقيقة لمساعدة عملك على النمو.",
				},
				CTAButton: LocalizedText{
					En: "Explore Our Services",
					Ar: "اكتشف خدماتنا",
				},
			},
			Contact: ContactContent{
				Title: LocalizedText{
					En: "Get in Touch",
					Ar: "تواصل معنا",
				},
				Address: LocalizedText{
					En: "123 Business Ave, Finance City, FC 45678",
					Ar: "123 شارع الأعمال, مدينة المال, 45678",
				},
				Email: "contact@extremeprecision.com",
				Phone: "+1 (555) 123-4567",
				Socials: Socials{
					Facebook:  "https://facebook.com",
					Linkedin:  "https://linkedin.com",
					X:         "https://x.com",
					Instagram: "https://instagram.com",
				},
			},
		},
		Services: []Service{
			{
				ID:          "service-1",
				Title:       LocalizedText{En: "Bookkeeping", Ar: "مسك الدفاتر"},
				Brief:       LocalizedText{En: "Accurate and timely bookkeeping services.", Ar: "خدمات مسك دفاتر دقيقة وفي الوقت المناسب."},
				Description: LocalizedText{En: "We handle all your bookkeeping needs, from recording transactions to reconciling accounts, ensuring your financial records are always up-to-date and accurate.", Ar: "نتولى جميع احتياجات مسك الدفاتر الخاصة بك، بدءًا من تسجيل المعاملات وحتى تسوية الحسابات، مما يضمن أن سجلاتك المالية محدثة ودقيقة دائمًا."},
				ImageURL:    "https://placehold.co/600x400/5e8b7e/ffffff?text=Bookkeeping",
			},
			{
				ID:          "service-2",
				Title:       LocalizedText{En: "Tax Preparation", Ar: "إعداد الضرائب"},
				Brief:       LocalizedText{En: "Stress-free tax preparation for individuals and businesses.", Ar: "إعداد ضرائب خالٍ من الإجهاد للأفراد والشركات."},
				Description: LocalizedText{En: "Our experts navigate the complex tax laws to ensure you get the maximum refund possible. We handle federal, state, and local tax returns for all types of entities.", Ar: "يتعامل خبراؤنا مع القوانين الضريبية المعقدة لضمان حصولك على أقصى استرداد ممكن. نحن نتعامل مع الإقرارات الضريبية الفيدرالية والولائية والمحلية لجميع أنواع الكيانات."},
				ImageURL:    "https://placehold.co/600x400/2f4b26/ffffff?text=Tax+Prep",
			},
			{
				ID:          "service-3",
				Title:       LocalizedText{En: "Financial Consulting", Ar: "الاستشارات المالية"},
				Brief:       LocalizedText{En: "Strategic financial advice to guide your business decisions.", Ar: "نصائح مالية استراتيجية لتوجيه قرارات عملك."},
				Description: LocalizedText{En: "We provide expert financial consulting to help you make informed decisions. Our services include financial planning, budgeting, forecasting, and risk management to help you achieve your financial goals.", Ar: "نقدم استشارات مالية متخصصة لمساعدتك في اتخاذ قرارات مستنيرة. تشمل خدماتنا التخطيط المالي والميزانية والتنبؤ وإدارة المخاطر لمساعدتك في تحقيق أهدافك المالية."},
				ImageURL:    "https://placehold.co/600x400/a7c957/ffffff?text=Consulting",
			},
			{
				ID:          "service-4",
				Title:       LocalizedText{En: "Payroll Services", Ar: "خدمات الرواتب"},
				Brief:       LocalizedText{En: "Efficient and compliant payroll processing.", Ar: "معالجة رواتب فعالة ومتوافقة مع القوانين."},
				Description: LocalizedText{En: "Our payroll services ensure your employees are paid on time, every time. We handle tax withholdings, direct deposits, and compliance with all payroll regulations.", Ar: "تضمن خدمات الرواتب لدينا دفع رواتب موظفيك في الوقت المحدد دائمًا. نحن نتولى الاستقطاعات الضريبية والإيداعات المباشرة والامتثال لجميع لوائح الرواتب."},
				ImageURL:    "https://placehold.co/600x400/6b9080/ffffff?text=Payroll",
			},
			{
				ID:          "service-5",
				Title:       LocalizedText{En: "Audit & Assurance", Ar: "التدقيق والتوكيد"},
				Brief:       LocalizedText{En: "Independent audits to enhance credibility.", Ar: "عمليات تدقيق مستقلة لتعزيز المصداقية."},
				Description: LocalizedText{En: "We conduct thorough audits to provide assurance on your financial statements, helping you meet regulatory requirements and gain the trust of investors and stakeholders.", Ar: "نجري عمليات تدقيق شاملة لتوفير تأكيد على بياناتك المالية، مما يساعدك على تلبية المتطلبات التنظيمية وكسب ثقة المستثمرين وأصحاب المصلحة."},
				ImageURL:    "https://placehold.co/600x400/4e6e58/ffffff?text=Audit",
			},
			{
				ID:          "service-6",
				Title:       LocalizedText{En: "Business Valuation", Ar: "تقييم الأعمال"},
				Brief:       LocalizedText{En: "Objective and credible business valuation services.", Ar: "خدمات تقييم أعمال موضوعية وذات مصداقية."},
				Description: LocalizedText{En: "Whether for mergers, acquisitions, or internal planning, our valuation experts provide a clear and defensible assessment of your business's worth.", Ar: "سواء كان ذلك لعمليات الدمج أو الاستحواذ أو التخطيط الداخلي، يقدم خبراؤنا في التقييم تقييمًا واضحًا وقابلاً للدفاع عن قيمة عملك."},
				ImageURL:    "https://placehold.co/600x400/8b9d78/ffffff?text=Valuation",
			},
			{
				ID:          "service-7",
				Title:       LocalizedText{En: "Forensic Accounting", Ar: "المحاسبة القضائية"},
				Brief:       LocalizedText{En: "Investigating financial discrepancies and fraud.", Ar: "التحقيق في التناقضات المالية والاحتيال."},
				Description: LocalizedText{En: "Our forensic accountants are skilled at uncovering financial irregularities. We provide litigation support, fraud investigation, and expert witness services.", Ar: "يتمتع محاسبونا القضائيون بالمهارة في الكشف عن المخالفات المالية. نحن نقدم دعمًا في التقاضي والتحقيق في الاحتيال وخدمات الشهود الخبراء."},
				ImageURL:    "https://placehold.co/600x400/c7d1b8/000000?text=Forensic",
			},
			{
				ID:          "service-8",
				Title:       LocalizedText{En: "International Tax", Ar: "الضرائب الدولية"},
				Brief:       LocalizedText{En: "Navigating the complexities of global tax.", Ar: "التنقل في تعقيدات الضرائب العالمية."},
				Description: LocalizedText{En: "For businesses operating across borders, we offer expert guidance on international tax planning, compliance, and transfer pricing to optimize your global tax position.", Ar: "للشركات التي تعمل عبر الحدود، نقدم إرشادات متخصصة حول التخطيط الضريبي الدولي والامتثال وأسعار التحويل لتحسين وضعك الضريبي العالمي."},
				ImageURL:    "https://placehold.co/600x400/a8bba2/ffffff?text=Global+Tax",
			},
			{
				ID:          "service-9",
				Title:       LocalizedText{En: "Succession Planning", Ar: "تخطيط التعاقب"},
				Brief:       LocalizedText{En: "Securing the future of your business.", Ar: "تأمين مستقبل عملك."},
				Description: LocalizedText{En: "We help you develop a comprehensive succession plan to ensure a smooth transition of leadership and ownership, protecting the legacy you've built.", Ar: "نساعدك على تطوير خطة تعاقب شاملة لضمان انتقال سلس للقيادة والملكية، وحماية الإرث الذي بنيته."},
				ImageURL:    "https://placehold.co/600x400/90a184/ffffff?text=Succession",
			},
		},
		Pages: []Page{
			{
				ID:   "page-1",
				Slug: "about-us",
				Title: LocalizedText{
					En: "About Us",
					Ar: "من نحن",
				},
				Content: LocalizedText{
					En: "<h1>Our Story</h1><p>Founded in 2010, Extreme Precision has been providing top-notch accounting services to businesses of all sizes. Our mission is to empower our clients with the financial clarity they need to succeed.</p><h2>Our Mission</h2><p>To provide exceptional accounting and financial services, enabling our clients to achieve their business objectives with confidence and clarity.</p><h2>Our Vision</h2><p>To be the most trusted and respected professional services firm recognized by our clients for delivering excellence.</p>",
					Ar: "<h1>قصتنا</h1><p>تأسست شركة الدقة القصوى في عام 2010، وهي تقدم خدمات محاسبية عالية الجودة للشركات من جميع الأحجام. مهمتنا هي تمكين عملائنا بالوضوح المالي الذي يحتاجونه للنجاح.</p><h2>مهمتنا</h2><p>تقديم خدمات محاسبية ومالية استثنائية، وتمكين عملائنا من تحقيق أهداف أعمالهم بثقة ووضوح.</p><h2>رؤيتنا</h2><p>أن نكون شركة الخدمات المهنية الأكثر ثقة واحترامًا والمعترف بها من قبل عملائنا لتقديم التميز.</p>",
				},
			},
			{
				ID:   "page-2",
				Slug: "contact-us",
				Title: LocalizedText{
					En: "Contact Us",
					Ar: "اتصل بنا",
				},
				Content: LocalizedText{
					En: "<p>We would love to hear from you! Reach out via the details below, or fill out the form to send us a message directly.</p>",
					Ar: "<p>يسعدنا أن نسمع منك! تواصل معنا عبر التفاصيل أدناه، أو املأ النموذج لإرسال رسالة إلينا مباشرة.</p>",
				},
			},
		},
	}
}
