package content

var (
	Description = `Building exceptional web applications and e-commerce solutions with modern technologies.
	Specialized in React, Node.js, MongoDB, and Shopify app development.`

	IntroOne = `I'm a passionate full-stack developer specializing in the MERN stack and Shopify app development.
	With over 2 years of experience, I've developed multiple successful Shopify apps, built enterprise-level
	applications, and helped businesses transform their ideas into powerful digital solutions.`

	IntroTwo = `My expertise spans from creating published Shopify apps used by thousands of merchants to developing
	healthcare platforms, HRMS systems, and e-commerce solutions. I've worked on projects ranging from
	startup MVPs to enterprise applications, always focusing on scalable architecture and exceptional user experience.`

	Achievement = `Recipient of National Cultural Award for Saudi Arabia project - a React.js and Node.js application
	built with Tailwind CSS and Ant Design.`
)

// Default is the content served by the site.
var Default = Portfolio{
	Site: Site{
		Title:       "Aashiq Farid - MERN Stack & Shopify Developer",
		Description: "Full Stack Developer specializing in MERN stack and Shopify app development. Creating exceptional web applications and e-commerce solutions.",
		Keywords:    []string{"MERN Stack Developer", "Shopify Developer", "Full Stack Developer", "React Developer", "Node.js Developer"},
		Author:      "Aashiq Farid",
		URL:         "https://aashiqfarid.dev",
		SiteName:    "Aashiq Farid Portfolio",
		Locale:      "en_US",
		OGSummary:   "Full Stack Developer specializing in MERN stack and Shopify app development.",
		Twitter:     "@aashiqfarid",
		Robots:      "index, follow",
	},
	Profile: Profile{
		Name:        "Aashiq Farid",
		Headline:    "MERN Stack & Shopify Developer creating exceptional digital experiences.",
		Description: Description,
		Email:       "aashiqfarid64@gmail.com",
		GitHub:      "https://github.com/af1233",
		LinkedIn:    "https://www.linkedin.com/in/aashiq-farid/",
	},
	Roles: []string{
		"MERN Stack Developer",
		"Shopify App Developer",
		"Full Stack Engineer",
		"React Specialist",
	},
	Intro:       []string{IntroOne, IntroTwo},
	Achievement: Achievement,
	Expertise: []string{
		"React.js", "Node.js", "MongoDB", "Express.js",
		"Shopify Apps", "Next.js", "TypeScript", "Tailwind CSS",
		"Azure AD", "Ant Design", "Shopify API", "GraphQL", "Remix.js", "Prisma", "Vercel",
	},
	Highlights: []Highlight{
		{
			Icon:        IconCode,
			Title:       "Full Stack Development",
			Description: "Expert in MERN stack with 5+ years of experience building scalable applications and award-winning projects",
		},
		{
			Icon:        IconGlobe,
			Title:       "Shopify Specialist",
			Description: "Published Shopify apps with thousands of active users, custom themes, and complete store setups",
		},
		{
			Icon:        IconDatabase,
			Title:       "Backend Architecture",
			Description: "Enterprise-level backend systems with Azure authentication, MongoDB, and scalable API design",
		},
		{
			Icon:        IconSmartphone,
			Title:       "Responsive Design",
			Description: "Modern UI/UX with Tailwind CSS, Ant Design, and mobile-first responsive design principles",
		},
	},
	SkillCategories: []SkillCategory{
		{
			Title: "Frontend Development",
			Skills: []Skill{
				{Name: "React.js", Level: 95},
				{Name: "Next.js", Level: 90},
				{Name: "TypeScript", Level: 85},
				{Name: "Tailwind CSS", Level: 90},
				{Name: "Ant Design", Level: 85},
			},
		},
		{
			Title: "Backend Development",
			Skills: []Skill{
				{Name: "Node.js", Level: 90},
				{Name: "Express.js", Level: 85},
				{Name: "MongoDB", Level: 80},
				{Name: "Azure AD", Level: 75},
				{Name: "GraphQL", Level: 70},
			},
		},
		{
			Title: "Shopify & E-commerce",
			Skills: []Skill{
				{Name: "Shopify Apps", Level: 90},
				{Name: "Shopify API", Level: 85},
				{Name: "Liquid Templates", Level: 80},
				{Name: "Store Setup", Level: 90},
				{Name: "Payment Integration", Level: 85},
			},
		},
	},
	Projects: []Project{
		{
			Title:        "Store Pickup by Genie Apps",
			Description:  "A comprehensive Shopify app for store pickup management, enabling customers to select pickup locations and manage orders efficiently.",
			Image:        "https://images.pexels.com/photos/6214476/pexels-photo-6214476.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies: []string{"Shopify API", "Polaris", "Tailwind CSS", "React", "Node.js", "MongoDB"},
			Live:         "https://apps.shopify.com/store-pickup-by-genie-apps",
		},
		{
			Title:        "Agora Amazon Affiliate Tool",
			Description:  "Advanced Shopify app for Amazon affiliate marketing, helping store owners integrate and manage Amazon products seamlessly.",
			Image:        "https://images.pexels.com/photos/6214476/pexels-photo-6214476.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies: []string{"Shopify API", "Polaris", "Tailwind CSS", "React", "Node.js", "Express.js", "MongoDB"},
			Live:         "https://apps.shopify.com/agora-amazon-affiliate-tool",
		},
		{
			Title:        "Beast Nutrition Pakistan",
			Description:  "Complete e-commerce store built from scratch for nutrition supplements, featuring custom design, payment integration, and inventory management.",
			Image:        "https://images.pexels.com/photos/4162449/pexels-photo-4162449.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies: []string{"Shopify", "Liquid", "JavaScript", "CSS"},
			Live:         "https://beastnutritionpk.com/",
		},
		{
			Title:        "Moxx Digital Agency",
			Description:  "Modern digital agency website built with Next.js, featuring responsive design, smooth animations, and optimized performance.",
			Image:        "https://images.pexels.com/photos/3184317/pexels-photo-3184317.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies: []string{"Next.js", "Tailwind CSS", "Node.js", "MongoDB"},
			Live:         "https://moxx.co/",
		},
		{
			Title:        "Trova Health Platform",
			Description:  "Comprehensive healthcare platform with patient management, appointment scheduling, and secure authentication system.",
			Image:        "https://images.pexels.com/photos/5212317/pexels-photo-5212317.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies: []string{"React", "Tailwind CSS", "Node.js", "Express.js", "MongoDB"},
			Live:         "https://www.trova.health/",
		},
		{
			Title:        "HRMS - Seazen Group",
			Description:  "Enterprise Human Resource Management System with Azure authentication, employee management, and comprehensive reporting.",
			Image:        "https://images.pexels.com/photos/3184465/pexels-photo-3184465.jpeg?auto=compress&cs=tinysrgb&w=800",
			Technologies: []string{"React", "Azure AD", "Node.js", "MongoDB", "Express.js"},
			Live:         "https://essdev.seazengroup.com",
		},
	},
	Footer: Footer{
		Tagline: "MERN Stack & Shopify Developer creating exceptional digital experiences.",
		Columns: []FooterColumn{
			{
				Title: "Services",
				Items: []string{"Full Stack Development", "Shopify App Development", "E-commerce Solutions", "API Development"},
			},
			{
				Title: "Technologies",
				Items: []string{"React & Next.js", "Node.js & Express", "MongoDB & PostgreSQL", "Shopify Platform"},
			},
		},
		QuickLinks: []Link{
			{Label: "About", Href: "#about"},
			{Label: "Skills", Href: "#skills"},
			{Label: "Projects", Href: "#projects"},
			{Label: "Contact", Href: "#contact"},
		},
		Copyright: "© 2024 Aashiq Farid. Made with love and lots of coffee.",
	},
}
