package content

// Sample returns starter content for a new portfolio. `folio init` writes it
// out with the wizard's answers filled into the profile.
func Sample() *Content {
	return &Content{
		Profile: Profile{
			Name:         "Your Name",
			Title:        "Ph.D. Candidate, Economics",
			Affiliation:  "Your University",
			Email:        "you@example.edu",
			ProfileURL:   "https://www.linkedin.com/in/your-profile/",
			ProfileLabel: "LinkedIn",
			Photo:        "/profile.jpg",
			CV:           "/cv.pdf",
			Intro: []string{
				"Welcome! I am an applied microeconomist with research interests in development economics, public economics, inequality, and political economy.",
				"My research explores how inequality affects social mobility, human capital attainment, and the political economy of development.",
			},
			Highlight: "I am on the job market this year.",
		},
		JobMarketPaper: &Paper{
			Title:     "Title of the Job Market Paper",
			Coauthors: "with A. Coauthor",
			Abstract:  "One or two paragraphs summarizing the question, the data, the identification strategy and the main results.\n\nMarkdown such as *emphasis* is supported.",
		},
		WorkingPapers: []Paper{
			{
				Title:     "A Working Paper",
				Coauthors: "with B. Coauthor and C. Coauthor",
				Abstract:  "Abstract of the working paper.",
			},
			{
				Title:    "A Solo-Authored Working Paper",
				Abstract: "Abstract of the second working paper.",
			},
		},
		WorksInProgress: []Paper{
			{
				Title:    "A Project in Progress",
				Abstract: "Short description of the project.",
			},
		},
	}
}
