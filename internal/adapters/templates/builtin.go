package templates

import "github.com/example/cadence/internal/ports/secondary"

// builtinTemplates are the standard delivery timelines shipped with cadence.
// Offsets count from the previous milestone's resolved date; the first
// milestone lands on the project start date.
var builtinTemplates = []*secondary.TemplateRecord{
	{
		Type:        "landingpage",
		Name:        "Landingpage",
		Description: "A focused landing page, roughly four weeks end to end.",
		Milestones: []secondary.BlueprintRecord{
			{
				Order: 1, Title: "Onboarding call",
				Description: "First meeting to align on goals, target audience and style.",
				Owner:       "agency", Category: "onboarding", DaysOffset: 0,
				ActionURL: "https://calendly.com", ActionLabel: "Book a slot",
			},
			{
				Order: 2, Title: "Upload content",
				Description: "Please upload all copy, images and documents to the shared folder.",
				Owner:       "client", Category: "content", DaysOffset: 7,
				ActionURL: "https://drive.google.com", ActionLabel: "Open shared folder",
			},
			{
				Order: 3, Title: "First design draft",
				Description: "We create the first visual draft of your landing page from your content.",
				Owner:       "agency", Category: "design", DaysOffset: 10,
			},
			{
				Order: 4, Title: "Design feedback",
				Description: "Please review the design draft and give us your detailed feedback.",
				Owner:       "client", Category: "review", DaysOffset: 5,
				ActionURL: "https://figma.com", ActionLabel: "View design",
			},
			{
				Order: 5, Title: "Apply revisions",
				Description: "We work your feedback in and finalize the design.",
				Owner:       "agency", Category: "design", DaysOffset: 5,
			},
			{
				Order: 6, Title: "Final approval",
				Description: "Please review the final version and approve the go-live.",
				Owner:       "client", Category: "review", DaysOffset: 2,
				ActionLabel: "View preview",
			},
			{
				Order: 7, Title: "Go-live & handover",
				Description: "Your landing page goes live. We hand over all credentials and documentation.",
				Owner:       "agency", Category: "deployment", DaysOffset: 0,
			},
		},
		InfrastructureTasks: []string{
			"Domain purchased",
			"Hosting configured",
			"SSL certificate active",
			"Analytics set up",
		},
	},
	{
		Type:        "website",
		Name:        "Website",
		Description: "A full website, roughly eight weeks end to end.",
		Milestones: []secondary.BlueprintRecord{
			{
				Order: 1, Title: "Onboarding & strategy workshop",
				Description: "In-depth workshop covering requirements, audiences and business goals.",
				Owner:       "agency", Category: "onboarding", DaysOffset: 0,
				ActionURL: "https://calendly.com", ActionLabel: "Book workshop",
			},
			{
				Order: 2, Title: "Deliver content & structure",
				Description: "Please provide all copy, images, documents and the desired page structure.",
				Owner:       "client", Category: "content", DaysOffset: 14,
				ActionURL: "https://drive.google.com", ActionLabel: "Open shared folder",
			},
			{
				Order: 3, Title: "Wireframes & UX concept",
				Description: "We develop the information architecture and build clickable wireframes.",
				Owner:       "agency", Category: "design", DaysOffset: 10,
			},
			{
				Order: 4, Title: "Wireframe feedback",
				Description: "Please review the wireframes and comment on structure and navigation.",
				Owner:       "client", Category: "review", DaysOffset: 5,
				ActionURL: "https://figma.com", ActionLabel: "View wireframes",
			},
			{
				Order: 5, Title: "Screen design",
				Description: "We create the visual design of your website from the approved UX concept.",
				Owner:       "agency", Category: "design", DaysOffset: 14,
			},
			{
				Order: 6, Title: "Design feedback",
				Description: "Please review the final design and give us your detailed feedback.",
				Owner:       "client", Category: "review", DaysOffset: 7,
				ActionURL: "https://figma.com", ActionLabel: "View design",
			},
			{
				Order: 7, Title: "Development",
				Description: "We build your website from the approved design.",
				Owner:       "agency", Category: "development", DaysOffset: 21,
			},
			{
				Order: 8, Title: "Final approval & go-live",
				Description: "Test the finished website and give final approval for launch.",
				Owner:       "client", Category: "deployment", DaysOffset: 5,
				ActionLabel: "View staging site",
			},
		},
		InfrastructureTasks: []string{
			"Domain purchased",
			"Hosting configured",
			"SSL certificate active",
			"Email accounts set up",
			"Analytics set up",
			"Backup system configured",
		},
	},
	{
		Type:        "software",
		Name:        "Software Development",
		Description: "Agile software development, roughly twelve weeks end to end.",
		Milestones: []secondary.BlueprintRecord{
			{
				Order: 1, Title: "Discovery & requirements workshop",
				Description: "Full requirements analysis, user stories and technical feasibility.",
				Owner:       "agency", Category: "onboarding", DaysOffset: 0,
				ActionURL: "https://calendly.com", ActionLabel: "Book workshop",
			},
			{
				Order: 2, Title: "UI/UX design & prototyping",
				Description: "We build interactive prototypes and the visual design system.",
				Owner:       "agency", Category: "design", DaysOffset: 14,
			},
			{
				Order: 3, Title: "Design approval",
				Description: "Please review and approve the final design before development starts.",
				Owner:       "client", Category: "review", DaysOffset: 7,
				ActionURL: "https://figma.com", ActionLabel: "Test prototype",
			},
			{
				Order: 4, Title: "Sprint 1: core features",
				Description: "Development of the foundational features and infrastructure.",
				Owner:       "agency", Category: "development", DaysOffset: 14,
			},
			{
				Order: 5, Title: "Sprint 1 review & feedback",
				Description: "Sprint demo. Please test the features and give feedback.",
				Owner:       "client", Category: "review", DaysOffset: 5,
				ActionLabel: "View demo",
			},
			{
				Order: 6, Title: "Sprint 2: extensions",
				Description: "Development of extended features based on your feedback.",
				Owner:       "agency", Category: "development", DaysOffset: 14,
			},
			{
				Order: 7, Title: "Sprint 2 review & feedback",
				Description: "Second sprint demo. Please test and give final feedback.",
				Owner:       "client", Category: "review", DaysOffset: 5,
				ActionLabel: "View demo",
			},
			{
				Order: 8, Title: "User acceptance testing",
				Description: "Intensive testing phase. Please exercise all features and report issues.",
				Owner:       "client", Category: "review", DaysOffset: 10,
				ActionLabel: "Open test environment",
			},
			{
				Order: 9, Title: "Deployment & launch",
				Description: "Your software goes live. We run the final deployment and hand over documentation.",
				Owner:       "agency", Category: "deployment", DaysOffset: 0,
			},
		},
		InfrastructureTasks: []string{
			"Cloud infrastructure provisioned",
			"CI/CD pipeline configured",
			"Database provisioned",
			"Monitoring set up",
			"Backup strategy implemented",
			"SSL certificates configured",
			"Domain configured",
		},
	},
}
