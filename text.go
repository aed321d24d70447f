package main

import (
	"github.com/Zachkp/portfolio/internal/compose"
	"github.com/Zachkp/portfolio/internal/portfolio"
)

// defaultContent is the content the page shows when no content file
// overrides it.
func defaultContent() compose.Defaults {
	return compose.Defaults{
		Hero: compose.HeroContent{
			Name:      "Tanvi Ladha",
			Title:     "CS @ UC Santa Barbara",
			Summary:   "Regents Scholar, Honors Program, Dean's Honors Engineering",
			AvatarURL: "https://media.licdn.com/dms/image/v2/D4E03AQFY8oOGjHVYjQ/profile-displayphoto-shrink_800_800/B4EZdlRr.wG4Ag-/0/1749750825778?e=1755734400&v=beta&t=tkSADlB9vl9YFc0RoM0ee13YUo90tgaUCNI7CzNcwz4",
		},
		Experiences: defaultExperiences,
		Projects:    defaultProjects,
		Features:    defaultFeatures,
		Contact: compose.ContactContent{
			Email: "tanviladha@outlook.com",
			SocialLinks: portfolio.SocialLinks{
				GitHub:   "https://github.com/tanviladha",
				LinkedIn: "https://www.linkedin.com/in/tanvi-l/",
			},
		},
	}
}

var defaultExperiences = []portfolio.ExperienceRecord{
	{
		ID:          "1",
		Company:     "Altoura - Bangalore, India",
		Role:        "Software Engineering Intern",
		Period:      "July 2025 - Sept 2025",
		Description: "Contributing to an AI-powered learning platform infrastructure for industrial metaverse applications, serving Fortune 100 clients.",
		Logo:        "https://media.licdn.com/dms/image/v2/C4D0BAQF7sCx_pxFVqA/company-logo_200_200/company-logo_200_200/0/1630528681778/studio_216_logo?e=2147483647&v=beta&t=vyB6WQ00VhoZ7wHI_BLLESlbZs42LpMEcKRdoOU6XJM",
		Skills:      []string{"AI tools", "Full-stack Dev"},
		Relevance:   portfolio.Float(10),
	},
	{
		ID:          "2",
		Company:     "UCSB CS3E Lab - Santa Barbara, CA",
		Role:        "Research Assistant",
		Period:      "Jan 2024 - Present",
		Description: "Co-authoring comprehensive curriculum module on IP and Generative AI integrating legal frameworks with technical computer science education. Conducting legal and technical research to build programming exercises.",
		Logo:        "https://upload.wikimedia.org/wikipedia/commons/4/48/UC_Santa_Barbara_Seal.png",
		Skills:      []string{"Research", "C++", "Project Management", "Technical Writing"},
		Relevance:   portfolio.Float(9),
	},
	{
		ID:          "3",
		Company:     "Freedom 4 Youth - Santa Barbara, CA",
		Role:        "Web Developer and Innovation Leader",
		Period:      "Sept 2024 - Present",
		Description: "Led redesign of the organization’s website, turning it into a responsive layout using HTML, CSS, JavaScript, and React to improve engagement by implementing SEO strategies. Founded digital literacy and AI education program addressing digital divide for underserved youth.",
		Logo:        "https://freedom4youth.org/wp-content/uploads/2020/10/f4y_logo1-.jpg",
		Skills:      []string{"JavaScript", "React", "CSS", "Responsive Design", "Prompt-engineering"},
		Relevance:   portfolio.Float(8),
	},
	{
		ID:          "4",
		Company:     "UCSB CS Undergraduate Affairs Committee",
		Role:        "Student Representative",
		Period:      "Sept 2024 - Present",
		Description: "Faculty-nominated student representative organizing technical workshops, mentorship programs, and development initiatives for computer science department.",
		Logo:        "https://www.cs.ucsb.edu/sites/default/files/images/Computer-Science-emblem.png",
		Skills:      []string{"Leadership", "Mentoring", "Problem-Solving", "Communication"},
		Relevance:   portfolio.Float(7),
	},
	{
		ID:          "5",
		Company:     "Qualcomm - Remote",
		Role:        "AI Fellow",
		Period:      "Aug 2024 - Dec 2024",
		Description: "Led a project with Qualcomm and Break Through Tech to develop a vision-language model for automated caption generation on chest x-rays, enhancing diagnostic efficiency.",
		Logo:        "https://upload.wikimedia.org/wikipedia/commons/thumb/f/fc/Qualcomm-Logo.svg/1200px-Qualcomm-Logo.svg.png",
		Skills:      []string{"Python", "TensorFlow", "NLP", "Vision-Language", "ML Development", "Fine-tuning"},
		Relevance:   portfolio.Float(6),
	},
}

var defaultProjects = []portfolio.ProjectRecord{
	{
		ID:          "1",
		Title:       "ADHD Prediction in Female Brains",
		Description: "Built an XGBoost model for ADHD diagnosis using neuroimaging and behavioral data, addressing the underdiagnosed population of females for WiDS Datathon 2025.",
		Technologies: []string{
			"Python", "Scikit-learn", "Machine Learning", "Pandas", "NumPy", "Seaborne", "Iterative Development",
		},
		RepoURL:  "https://github.com/UCLA-WiDS-Team23/WiDS-Team23",
		ImageURL: "https://static.wixstatic.com/media/f15460_ed7cf64a8dfa45c591451f0657f7f481~mv2.png/v1/fill/w_560,h_560,al_c,lg_1,q_85,enc_avif,quality_auto/fullcolor_horizontal_edited.png",
	},
	{
		ID:           "2",
		Title:        "PrepBot",
		Description:  "Developed an AI interview prep chatbot progressing from DiffLib to OpenAI API integration for enhanced accuracy.",
		Technologies: []string{"Python", "NLTK", "DiffLib", "OpenAI APIs"},
		RepoURL:      "https://github.com/tanviladha/Prep-Bot",
		ImageURL:     "https://i.fbcd.co/products/original/art-1-57bc6f3a35001ad375aa65558958e1d48a40a4df5e4cb45bd23a9f89d1a8ca3d.jpg",
	},
	{
		ID:           "3",
		Title:        "Writer for the Daily Nexus",
		Description:  "Write for the Science and Tech Section of the Daily Nexus, UCSB's student newspaper, making digestible content for varying audiences covering emerging scientific developments.",
		Technologies: []string{"Journalism", "Technology and Science", "Communication"},
		ImageURL:     "https://pbs.twimg.com/profile_images/967547872508968961/3AJbKH2R_400x400.jpg",
	},
}

var defaultFeatures = []portfolio.FeatureRecord{
	{
		ID:          "1",
		Title:       "Pivotal Ventures x Break Through Tech",
		Description: "Meet Hasti Abbasi Kenarsari, Kyra Abbu, and **Tanvi Ladha** - three young people who are helping shape the future of tech.",
		Link:        "https://www.linkedin.com/posts/pivotalventures_meet-hasti-abbasi-kenarsari-kyra-abbu-and-activity-7339275415007502336-Km0n?utm_source=share&utm_medium=member_desktop&rcm=ACoAADttMEMBl7ch3JaZXvMLciWbtKT-0Rp7Kuk",
	},
	{
		ID:          "2",
		Title:       "The Daily Nexus",
		Description: "Conscience Computer Science: UCSB Launches First Embedded Ethics Lab",
		Link:        "https://dailynexus.com/2025-05-22/conscience-computer-science-ucsb-launches-first-embedded-ethics-lab/",
	},
}
