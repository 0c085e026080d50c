package services

import "github.com/sm8ta/cogniwork_web/internal/core/domain"

const brandName = "CogniWork"

func marketingPage() *domain.LandingPage {
	return &domain.LandingPage{
		Variant: domain.VariantMarketing,
		Brand:   brandName,
		Nav: []domain.Link{
			{Label: "Login", Href: "/login"},
			{Label: "Start Free Trial", Href: "/login"},
		},
		Hero: domain.Hero{
			Badge:     "Trusted by 500+ Companies",
			Title:     "Transform Your Workplace with Intelligent Performance Management",
			Subtitle:  "All-in-one platform for employee management, performance reviews, goal tracking, and team development. Built for modern teams.",
			Primary:   domain.Link{Label: "Get Started Free", Href: "/login"},
			Secondary: domain.Link{Label: "Watch Demo", Href: "#features"},
		},
		Stats: []domain.Stat{
			{Label: "Companies Trust Us", Value: "500+"},
			{Label: "Employee Profiles", Value: "50K+"},
			{Label: "Performance Reviews", Value: "100K+"},
			{Label: "Customer Satisfaction", Value: "99%"},
		},
		FeaturesHeading: "Everything You Need to Excel",
		FeaturesIntro:   "Comprehensive tools to manage, motivate, and measure your team's success",
		Features: []domain.Feature{
			{Icon: "users", Title: "Employee Management", Description: "Centralized system to manage your entire workforce with profiles, roles, and permissions"},
			{Icon: "bullseye", Title: "Goals & OKRs", Description: "Set, track, and achieve organizational and individual goals with powerful OKR framework"},
			{Icon: "chart-line", Title: "Performance Reviews", Description: "360-degree feedback system with self-assessments, peer reviews, and manager evaluations"},
			{Icon: "calendar", Title: "1:1 Meetings", Description: "Schedule and document one-on-one meetings with action item tracking and templates"},
			{Icon: "trophy", Title: "XP & Leaderboards", Description: "Gamified experience system that rewards achievements and encourages growth"},
			{Icon: "code", Title: "GitHub Integration", Description: "Track commits, PRs, issues, and code contributions with automatic XP rewards"},
			{Icon: "handshake", Title: "Hiring Pipeline", Description: "End-to-end recruitment management with applicant tracking and automated workflows"},
			{Icon: "rocket", Title: "Project Management", Description: "Organize teams, assign tasks, and track progress across multiple projects"},
		},
		PricingHeading: "Choose Your Plan",
		PricingIntro:   "Simple, transparent pricing that grows with you. Try any plan free for 14 days.",
		Plans: []domain.PricingPlan{
			{
				Name:        "Starter",
				Price:       "49",
				Period:      "month",
				Description: "Perfect for small teams",
				Features: []string{
					"Up to 10 employees",
					"Basic performance reviews",
					"Goals & OKRs tracking",
					"1:1 meeting management",
					"Email support",
					"5GB storage",
				},
				Color: "blue",
			},
			{
				Name:        "Professional",
				Price:       "99",
				Period:      "month",
				Description: "For growing businesses",
				Features: []string{
					"Up to 50 employees",
					"Advanced 360° reviews",
					"XP & Leaderboards",
					"GitHub integration",
					"Hiring pipeline (10 positions)",
					"Priority support",
					"50GB storage",
					"Custom branding",
				},
				Popular: true,
				Color:   "purple",
			},
			{
				Name:        "Enterprise",
				Price:       domain.CustomPrice,
				Description: "Unlimited everything",
				Features: []string{
					"Unlimited employees",
					"Full 360° feedback system",
					"Advanced analytics",
					"Unlimited GitHub repos",
					"Unlimited hiring positions",
					"Dedicated account manager",
					"Unlimited storage",
					"SLA guarantee",
					"Custom integrations",
					"On-premise deployment",
				},
				Color: "pink",
			},
		},
		Callout: &domain.Callout{
			Title:  "Ready to Transform Your Team?",
			Text:   "Join thousands of companies already using CogniWork to build high-performing teams. Start your free 14-day trial today - no credit card required.",
			Action: domain.Link{Label: "Start Free Trial", Href: "/login"},
		},
		Footer: &domain.Footer{
			Tagline: "Modern performance management for forward-thinking teams.",
			Columns: []domain.FooterColumn{
				{Heading: "Product", Items: []string{"Features", "Pricing", "Security", "Roadmap"}},
				{Heading: "Company", Items: []string{"About", "Blog", "Careers", "Contact"}},
				{Heading: "Legal", Items: []string{"Privacy", "Terms", "Compliance"}},
			},
			Copyright: "© 2024 CogniWork. All rights reserved.",
		},
	}
}

func classicPage() *domain.LandingPage {
	return &domain.LandingPage{
		Variant: domain.VariantClassic,
		Brand:   brandName,
		Hero: domain.Hero{
			Badge:     "CogniWork (Demo)",
			Title:     "Unified AI for People, Projects & Product",
			Subtitle:  "Streamline hiring, simulate product interviews, and manage projects with a single AI-powered interface. Built as a demo for the hackathon — fast to review, simple to extend.",
			Primary:   domain.Link{Label: "View Employee Demo", Href: "/employee/dashboard"},
			Secondary: domain.Link{Label: "Sign in", Href: "/login"},
			ImageURL:  "https://images.unsplash.com/photo-1581092580496-274f3d7f1b6b?w=1200&q=80&auto=format&fit=crop",
		},
		Highlights: []domain.Stat{
			{Label: "Stack", Value: "Go • Gin • Redis"},
			{Label: "Status", Value: "Demo-ready (no backend required for UI preview)"},
		},
		FeaturesHeading: "What it does",
		Features: []domain.Feature{
			{Icon: "users", Title: "People & Hiring", Description: "Auto-screen resumes, match candidates to roles, and save interviewer notes."},
			{Icon: "project-diagram", Title: "Project Management", Description: "AI-assisted team building, task assignment and risk prediction."},
			{Icon: "brain", Title: "Product Intelligence", Description: "Simulate thousands of user interviews and connect market signals to product decisions."},
		},
		Callout: &domain.Callout{
			Title:  "Want to review quickly?",
			Text:   "Use the Employee Demo link to preview the UI without running the backend.",
			Action: domain.Link{Label: "Open demo", Href: "/employee/dashboard"},
		},
	}
}

var landingCatalog = map[string]func() *domain.LandingPage{
	domain.VariantMarketing: marketingPage,
	domain.VariantClassic:   classicPage,
}
