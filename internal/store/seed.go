package store

import "github.com/ituna-edu/portal-api/internal/models"

// Seed returns the fixture dataset the portal ships with. Initialize writes
// it exactly once per storage lifetime; ids are never reassigned afterwards.
func Seed() models.Aggregate {
	return models.Aggregate{
		Students:      seedStudents(),
		Teachers:      seedTeachers(),
		Articles:      seedArticles(),
		Resources:     seedResources(),
		Notifications: seedNotifications(),
	}
}

func seedResources() []models.Resource {
	return []models.Resource{
		{ID: 1, FileName: "Algebra_Chapter_5.pdf", Subject: "Mathematics", Uploader: "Mr. Ben Carter", Date: "2023-10-19", Type: "pdf"},
		{ID: 2, FileName: "Photosynthesis_Lab_Report.docx", Subject: "Science", Uploader: "Dr. Evelyn Reed", Date: "2023-10-18", Type: "doc"},
		{ID: 3, FileName: "The_Great_Gatsby_Analysis.pdf", Subject: "English", Uploader: "Ms. Clara Oswald", Date: "2023-10-17", Type: "pdf"},
		{ID: 4, FileName: "WWII_Timeline.xlsx", Subject: "History", Uploader: "Ms. Aisha Khan", Date: "2023-10-16", Type: "xls"},
		{ID: 5, FileName: "Intro_to_Physics_Slides.pptx", Subject: "Science", Uploader: "Dr. Evelyn Reed", Date: "2023-10-15", Type: "ppt"},
	}
}

func seedArticles() []models.Article {
	return []models.Article{
		{
			ID:      1,
			Title:   "Breakthrough in Quantum Physics Lab",
			Author:  "Dr. Evelyn Reed",
			Date:    "Oct 26, 2023",
			Excerpt: "Our Grade 12 students have successfully demonstrated quantum entanglement...",
			Image:   "https://picsum.photos/seed/physics/400/300",
			Grade:   "12",
			Subject: "Science",
			Content: "In a landmark achievement for Ituna secondary School's science department, our Grade 12 AP Physics students have successfully demonstrated quantum entanglement in a controlled lab environment. This complex phenomenon, once described by Einstein as \"spooky action at a distance,\" involves particles being linked in such a way that their fates are intertwined, regardless of the distance separating them.\nUnder the guidance of Dr. Evelyn Reed, the students constructed a sophisticated apparatus to generate and observe entangled photon pairs. The experiment, which ran for three weeks, culminated in a successful test that confirmed the principles of quantum mechanics with a high degree of accuracy. This accomplishment not only deepens our students' understanding of modern physics but also places Ituna secondary at the forefront of secondary school science education.",
		},
		{
			ID:      2,
			Title:   "Annual Debate Championship Winners",
			Author:  "Mr. Samuel Chen",
			Date:    "Oct 24, 2023",
			Excerpt: "The debate club clinched the top prize at the national championship this weekend...",
			Image:   "https://picsum.photos/seed/debate/400/300",
			Grade:   models.GradeAll,
			Subject: "Extracurricular",
			Content: "The Ituna secondary School Debate Club has once again proven its mettle by clinching the top prize at the National High School Debate Championship held this past weekend. Facing stiff competition from over 50 schools, our team, consisting of senior students Jane Doe and John Smith, showcased exceptional rhetorical skills, critical thinking, and teamwork.\nTheir final debate on the topic of renewable energy policies was lauded by the judges as \"a masterclass in persuasive argumentation.\" Mr. Samuel Chen, the club's advisor, expressed immense pride in the team's hard work and dedication throughout the year. The championship trophy will be displayed in the school's main hall.",
		},
		{
			ID:      3,
			Title:   "New School Library Wing Opens",
			Author:  "Principal Thompson",
			Date:    "Oct 20, 2023",
			Excerpt: "We are thrilled to announce the opening of the new library wing, featuring...",
			Image:   "https://picsum.photos/seed/library/400/300",
			Grade:   models.GradeAll,
			Subject: "School News",
			Content: "We are thrilled to announce the grand opening of the new library wing. This state-of-the-art facility features collaborative study rooms, a digital media lab, and an expanded collection of books and online resources. The project, funded by our generous alumni and community partners, is designed to provide our students with a modern and inspiring learning environment. A dedication ceremony will be held on November 5th, and all students, parents, and community members are invited to attend.",
		},
		{
			ID:      4,
			Title:   "Understanding Shakespeare: A Deep Dive",
			Author:  "Ms. Clara Oswald",
			Date:    "Oct 18, 2023",
			Excerpt: "Grade 10 English classes embark on a semester-long project to bring Shakespeare to life...",
			Image:   "",
			Grade:   "10",
			Subject: "English",
			Content: "This semester, Grade 10 English students are embarking on an immersive project to explore the works of William Shakespeare. Moving beyond traditional analysis, students will be engaging in performance-based learning, creating modern adaptations of classic scenes, and exploring the historical context of the plays. Ms. Clara Oswald, head of the English department, believes this hands-on approach will foster a deeper appreciation for the Bard's timeless stories and complex characters.",
		},
	}
}

func seedTeachers() []models.Teacher {
	return []models.Teacher{
		{
			ID:             1,
			Name:           "Dr. Evelyn Reed",
			Title:          "Head of Science Department",
			Subjects:       []string{"AP Physics", "Chemistry", "Quantum Mechanics"},
			Qualifications: []string{"Ph.D. in Physics, MIT", "M.S. in Education"},
			Bio:            "Dr. Reed has over 15 years of experience in both research and education. She is passionate about making complex scientific concepts accessible and exciting for students, encouraging them to explore the world through inquiry and experimentation.",
			Email:          "e.reed@ituna.edu",
			Phone:          "+1 (555) 123-4567",
			Image:          "https://picsum.photos/seed/teacher1/500/500",
		},
		{
			ID:             2,
			Name:           "Ms. Clara Oswald",
			Title:          "English & Literature Teacher",
			Subjects:       []string{"English Literature", "Creative Writing", "Shakespearean Studies"},
			Qualifications: []string{"M.A. in English Literature, Oxford University", "Certified Teacher"},
			Bio:            "An avid reader and writer, Ms. Oswald brings classic literature to life. Her classroom is a vibrant space for discussion, critical analysis, and fostering a lifelong love of stories.",
			Email:          "c.oswald@ituna.edu",
			Phone:          "+1 (555) 234-5678",
			Image:          "https://picsum.photos/seed/teacher2/500/500",
		},
		{
			ID:             3,
			Name:           "Mr. Ben Carter",
			Title:          "Mathematics Teacher",
			Subjects:       []string{"Algebra", "Calculus", "Statistics"},
			Qualifications: []string{"B.S. in Mathematics, Stanford University", "10+ years teaching experience"},
			Bio:            "Mr. Carter believes that mathematics is a language that can be learned by everyone. He uses real-world examples and technology to make math engaging and relevant for his students.",
			Email:          "b.carter@ituna.edu",
			Phone:          "+1 (555) 345-6789",
			Image:          "https://picsum.photos/seed/teacher3/500/500",
		},
		{
			ID:             4,
			Name:           "Ms. Aisha Khan",
			Title:          "History & Social Studies Teacher",
			Subjects:       []string{"World History", "US History", "Government & Civics"},
			Qualifications: []string{"M.A. in History, University of Chicago"},
			Bio:            "Ms. Khan encourages students to think like historians, analyzing primary sources and understanding diverse perspectives. Her lessons often involve debates and project-based learning to connect the past with the present.",
			Email:          "a.khan@ituna.edu",
			Phone:          "+1 (555) 456-7890",
			Image:          "https://picsum.photos/seed/teacher4/500/500",
		},
	}
}

func seedStudents() []models.Student {
	return []models.Student{
		{
			ID:             1,
			Name:           "Mary Phiri",
			Grade:          9,
			Image:          "https://picsum.photos/seed/student1/500/500",
			Bio:            "An aspiring scientist with a passion for biology and chemistry. Member of the school debate club and the science olympiad team.",
			Email:          "mary.phiri@ituna.edu",
			Phone:          "+1 (555) 555-0101",
			OverallGrade:   78,
			Attendance:     92,
			RecentActivity: "Uploaded \"History of Ituna\" essay.",
			AcademicHistory: []models.AcademicTerm{
				{
					Term: "Fall 2023",
					Records: []models.SubjectRecord{
						{Subject: "Mathematics", Teacher: "Mr. Ben Carter", Grade: 75},
						{Subject: "English", Teacher: "Ms. Clara Oswald", Grade: 80},
						{Subject: "Science", Teacher: "Dr. Evelyn Reed", Grade: 85},
						{Subject: "History", Teacher: "Ms. Aisha Khan", Grade: 72},
					},
				},
				{
					Term: "Spring 2023",
					Records: []models.SubjectRecord{
						{Subject: "Mathematics", Teacher: "Mr. Ben Carter", Grade: 73},
						{Subject: "English", Teacher: "Ms. Clara Oswald", Grade: 78},
						{Subject: "Science", Teacher: "Dr. Evelyn Reed", Grade: 82},
						{Subject: "History", Teacher: "Ms. Aisha Khan", Grade: 68},
					},
				},
			},
			AttendanceHistory: []models.AttendanceEntry{
				{Date: "2023-10-26", Status: models.AttendancePresent},
				{Date: "2023-10-25", Status: models.AttendancePresent},
				{Date: "2023-10-24", Status: models.AttendanceAbsent, Notes: "Doctor's appointment."},
				{Date: "2023-10-23", Status: models.AttendanceLate, Notes: "Arrived at 8:15 AM."},
			},
			ProgressReports: []models.ProgressReport{
				{Term: "Fall 2023 Mid-Term", Date: "2023-10-15", TeacherComment: "Mary is improving steadily in Mathematics, needs more focus in English essays.", DownloadURL: "#"},
				{Term: "Spring 2023 Final", Date: "2023-06-01", TeacherComment: "A good semester for Mary, showing great potential in science.", DownloadURL: "#"},
			},
			UpcomingAssignments: []models.AssignmentPreview{
				{AssignmentID: 1, Subject: "English", Title: "The Great Gatsby - Chapter 3 Questions", DueDate: "2023-11-05"},
				{AssignmentID: 2, Subject: "Mathematics", Title: "Algebra Worksheet 5.2", DueDate: "2023-11-08"},
				{AssignmentID: 5, Subject: "History", Title: "WWII Essay Outline", DueDate: "2023-11-12"},
			},
		},
		{
			ID:             2,
			Name:           "John Smith",
			Grade:          11,
			Image:          "https://picsum.photos/seed/student2/500/500",
			Bio:            "Dedicated student with a focus on mathematics and computer science. Captain of the chess club and an active participant in coding competitions.",
			Email:          "john.smith@ituna.edu",
			Phone:          "+1 (555) 555-0102",
			OverallGrade:   91,
			Attendance:     98,
			RecentActivity: "Completed \"Calculus II\" quiz.",
			AcademicHistory: []models.AcademicTerm{
				{
					Term: "Fall 2023",
					Records: []models.SubjectRecord{
						{Subject: "Calculus", Teacher: "Mr. Ben Carter", Grade: 92},
						{Subject: "AP English", Teacher: "Ms. Clara Oswald", Grade: 88},
						{Subject: "Chemistry", Teacher: "Dr. Evelyn Reed", Grade: 95},
					},
				},
			},
			AttendanceHistory: []models.AttendanceEntry{
				{Date: "2023-10-26", Status: models.AttendancePresent},
				{Date: "2023-10-25", Status: models.AttendancePresent},
			},
			ProgressReports: []models.ProgressReport{
				{Term: "Fall 2023 Mid-Term", Date: "2023-10-15", TeacherComment: "John is a top performer in all subjects. A pleasure to have in class.", DownloadURL: "#"},
			},
			UpcomingAssignments: []models.AssignmentPreview{
				{AssignmentID: 3, Subject: "Chemistry", Title: "Lab Report: Titration Experiment", DueDate: "2023-11-06"},
				{AssignmentID: 4, Subject: "Calculus", Title: "Problem Set 7", DueDate: "2023-11-09"},
			},
		},
	}
}

func seedNotifications() []models.Notification {
	return []models.Notification{
		{
			ID:        1,
			Message:   "New resource \"Algebra_Chapter_5.pdf\" has been uploaded by Mr. Ben Carter.",
			Timestamp: "2 hours ago",
			Read:      false,
			Link:      "#resources-section",
		},
		{
			ID:        2,
			Message:   "Principal Thompson published a new article: \"New School Library Wing Opens\".",
			Timestamp: "1 day ago",
			Read:      false,
			Link:      "/#news/3",
		},
		{
			ID:        3,
			Message:   "Your assignment \"The Great Gatsby Analysis\" has been graded.",
			Timestamp: "3 days ago",
			Read:      true,
		},
		{
			ID:        4,
			Message:   "Welcome to the new Ituna secondary School Portal!",
			Timestamp: "1 week ago",
			Read:      true,
		},
	}
}
