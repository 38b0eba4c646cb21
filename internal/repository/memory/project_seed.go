package memory

import "deal-insights-be/internal/entity"

// SeedProjects returns the bundled portfolio of past engagements.
func SeedProjects() []*entity.Project {
	return []*entity.Project{
		{
			Id:            1,
			Client:        "TechCorp Inc.",
			ClientInitial: "TI",
			ClientColor:   "#3B82F6",
			Industry:      entity.IndustryTechnology,
			Year:          2024,
			Status:        entity.StatusWon,
			ProductOwner:  &entity.ProductOwner{Name: "Amelia Chen", Email: "amelia.chen@techcorp.com"},
			Objectives:    "Modernize legacy systems and migrate to cloud infrastructure to improve operational efficiency by 40%",
			Strategies:    []string{"Cloud Migration", "Agile Adoption", "Change Management"},
			KeyOutcomes:   "35% reduction in operational costs, 50% faster deployment cycles",
			Metrics:       &entity.Metrics{CostEfficiency: "+35%", TimeSaved: "50%", Satisfaction: "+28 NPS"},
		},
		{
			Id:            2,
			Client:        "Global Bank",
			ClientInitial: "GB",
			ClientColor:   "#10B981",
			Industry:      entity.IndustryFinance,
			Year:          2024,
			Status:        entity.StatusWon,
			ProductOwner:  &entity.ProductOwner{Name: "Carlos Alvarez", Email: "carlos.alvarez@globalbank.com"},
			Objectives:    "Enhance digital banking experience and increase customer satisfaction scores by 25%",
			Strategies:    []string{"UX Research", "Mobile-First Design", "A/B Testing"},
			KeyOutcomes:   "NPS increased by 32 points, 60% increase in mobile app engagement",
			Metrics:       &entity.Metrics{CostEfficiency: "+28%", TimeSaved: "45%", Satisfaction: "+32 NPS"},
		},
		{
			Id:            3,
			Client:        "RetailCo",
			ClientInitial: "RC",
			ClientColor:   "#F59E0B",
			Industry:      entity.IndustryRetail,
			Year:          2023,
			Status:        entity.StatusWon,
			ProductOwner:  &entity.ProductOwner{Name: "Riley Thompson", Email: "riley.thompson@retailco.com"},
			Objectives:    "Integrate online and offline channels to create seamless shopping experience",
			Strategies:    []string{"Channel Integration", "Inventory Optimization", "Analytics"},
			KeyOutcomes:   "45% increase in online sales, improved inventory turnover by 28%",
			Metrics:       &entity.Metrics{CostEfficiency: "+35%", TimeSaved: "50%", Satisfaction: "+32 NPS"},
		},
		{
			Id:            4,
			Client:        "HealthPlus",
			ClientInitial: "HP",
			ClientColor:   "#8B5CF6",
			Industry:      entity.IndustryHealthcare,
			Year:          2023,
			Status:        entity.StatusWon,
			ProductOwner:  &entity.ProductOwner{Name: "Dr. Priya Nair", Email: "priya.nair@healthplus.com"},
			Objectives:    "Implement telemedicine platform to increase patient access by 50%",
			Strategies:    []string{"Platform Development", "Regulatory Compliance", "Patient Engagement"},
			KeyOutcomes:   "65% increase in patient reach, 4.8/5 patient satisfaction rating",
			Metrics:       &entity.Metrics{CostEfficiency: "+42%", TimeSaved: "60%", Satisfaction: "+38 NPS"},
		},
		{
			Id:            5,
			Client:        "AutoDrive",
			ClientInitial: "AD",
			ClientColor:   "#EC4899",
			Industry:      entity.IndustryTechnology,
			Year:          2023,
			Status:        entity.StatusWon,
			ProductOwner:  &entity.ProductOwner{Name: "Leo Martins", Email: "leo.martins@autodrive.com"},
			Objectives:    "Launch AI-powered driver assistance features with 99.9% reliability",
			Strategies:    []string{"ML Engineering", "Safety Testing", "Partner Integration"},
			KeyOutcomes:   "Successful launch in 3 markets, zero critical incidents",
			Metrics:       &entity.Metrics{CostEfficiency: "+30%", TimeSaved: "55%", Satisfaction: "+25 NPS"},
		},
		{
			Id:            6,
			Client:        "EcoEnergy",
			ClientInitial: "EE",
			ClientColor:   "#14B8A6",
			Industry:      entity.IndustryTechnology,
			Year:          2023,
			Status:        entity.StatusWon,
			ProductOwner:  &entity.ProductOwner{Name: "Sophia Zhang", Email: "sophia.zhang@ecoenergy.com"},
			Objectives:    "Build renewable energy management platform for smart grid optimization",
			Strategies:    []string{"IoT Integration", "Data Analytics", "Sustainability Strategy"},
			KeyOutcomes:   "28% energy efficiency improvement, $2M cost savings",
			Metrics:       &entity.Metrics{CostEfficiency: "+28%", TimeSaved: "40%", Satisfaction: "+20 NPS"},
		},
		{
			Id:            7,
			Client:        "FashionForward",
			ClientInitial: "FF",
			ClientColor:   "#F97316",
			Industry:      entity.IndustryRetail,
			Year:          2024,
			Status:        entity.StatusLost,
			ProductOwner:  &entity.ProductOwner{Name: "Nina Patel", Email: "nina.patel@fashionforward.com"},
			Objectives:    "Create personalized shopping experience using AI recommendations",
			Strategies:    []string{"Recommendation Engine", "Personalization", "Mobile Commerce"},
			KeyOutcomes:   "Project not secured - budget constraints",
			Metrics:       nil,
		},
		{
			Id:            8,
			Client:        "DataStream",
			ClientInitial: "DS",
			ClientColor:   "#6366F1",
			Industry:      entity.IndustryFinance,
			Year:          2023,
			Status:        entity.StatusWon,
			ProductOwner:  &entity.ProductOwner{Name: "Ethan Walker", Email: "ethan.walker@datastream.com"},
			Objectives:    "Develop real-time fraud detection system with 99% accuracy",
			Strategies:    []string{"Machine Learning", "Real-time Processing", "Risk Management"},
			KeyOutcomes:   "99.2% fraud detection accuracy, 40% reduction in false positives",
			Metrics:       &entity.Metrics{CostEfficiency: "+40%", TimeSaved: "65%", Satisfaction: "+35 NPS"},
		},
	}
}
