package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/simplify-dev/simplify/internal/models"
)

// Seed inserts the static learning-catalog content. Idempotent: rows are
// keyed on their codes (or title+link for books) and existing rows are left
// untouched.
func Seed(conn *gorm.DB) error {
	if err := seedCourses(conn); err != nil {
		return err
	}
	if err := seedGigBooks(conn); err != nil {
		return err
	}
	return seedTrialProjects(conn)
}

func seedCourses(conn *gorm.DB) error {
	courses := []models.Course{
		// Web development
		{Code: "WEBDEV_IBM_FUNDAMENTALS", Title: "Web Development Fundamentals", ShortDescription: "Covers HTML, CSS, JavaScript, and basic frameworks for a solid foundation.", Category: "webdev", Organization: "IBM SkillBuild", Level: "Intermediate", Duration: "6-8 weeks", ExternalURL: "#", DetailPath: "/student/webdevcourse.html"},
		{Code: "WEBDEV_FCC_RESPONSIVE", Title: "Responsive Web Design", ShortDescription: "Learn HTML, CSS, Flexbox, Grid, and Accessibility to build mobile-first websites.", Category: "webdev", Organization: "freeCodeCamp", Level: "Beginner", Duration: "300 hours", ExternalURL: "#", DetailPath: "/student/webdevcourse.html"},
		{Code: "WEBDEV_GL_INTRO", Title: "Introduction to Web Development", ShortDescription: "Covers the basics of HTML, CSS, JavaScript, and responsive design principles.", Category: "webdev", Organization: "Great Learning", Level: "Beginner", Duration: "2-3 hours", ExternalURL: "#", DetailPath: "/student/webdevcourse.html"},
		{Code: "WEBDEV_GL_REACT", Title: "React JS Tutorial", ShortDescription: "Learn React components, JSX, props, state, hooks, and basic routing.", Category: "webdev", Organization: "Great Learning", Level: "Intermediate", Duration: "2-3 hours", ExternalURL: "#", DetailPath: "/student/webdevcourse.html"},
		{Code: "WEBDEV_GL_JQUERY", Title: "jQuery Tutorial", ShortDescription: "Explore DOM manipulation, events, effects, and animations with jQuery.", Category: "webdev", Organization: "Great Learning", Level: "Beginner", Duration: "1.5-2 hours", ExternalURL: "#", DetailPath: "/student/webdevcourse.html"},
		{Code: "WEBDEV_FCC_JS_ADS", Title: "JavaScript Algorithms & Data Structures", ShortDescription: "Covers ES6, regular expressions, debugging, data structures, and OOP.", Category: "webdev", Organization: "freeCodeCamp", Level: "Beginner", Duration: "300 hours", ExternalURL: "#", DetailPath: "/student/webdevcourse.html"},

		// Cyber security
		{Code: "CYBER_CS50_INTRO", Title: "CS50's Intro to Cyber Security", ShortDescription: "Covers security fundamentals, cryptography, and threat modeling.", Category: "cyber", Organization: "Harvard University", Level: "Intermediate", Duration: "10 weeks", ExternalURL: "#", DetailPath: "/student/cybersecurity.html"},
		{Code: "CYBER_IBM_FUNDAMENTALS", Title: "Cyber Security Fundamentals", ShortDescription: "Learn about network security, cryptography, and incident response.", Category: "cyber", Organization: "IBM SkillBuild", Level: "Beginner", Duration: "6-8 hours", ExternalURL: "#", DetailPath: "/student/cybersecurity.html"},
		{Code: "CYBER_SKILLINDIA_PROGRAM", Title: "Program in Cyber Security", ShortDescription: "Covers threat awareness, data protection, and privacy practices.", Category: "cyber", Organization: "Skill India", Level: "Beginner", Duration: "10-13 hours", ExternalURL: "#", DetailPath: "/student/cybersecurity.html"},
		{Code: "CYBER_IBM_ENTERPRISE", Title: "Enterprise Security in Practice", ShortDescription: "Gain technical skills for better knowledge in the cyber security domain.", Category: "cyber", Organization: "IBM SkillBuild", Level: "Beginner", Duration: "10 hours", ExternalURL: "#", DetailPath: "/student/cybersecurity.html"},
		{Code: "CYBER_IBM_THREAT_INTEL", Title: "Threat Intelligence & Hunting", ShortDescription: "Develop better knowledge in identifying and neutralizing threats.", Category: "cyber", Organization: "IBM SkillBuild", Level: "Intermediate", Duration: "5 hours", ExternalURL: "#", DetailPath: "/student/cybersecurity.html"},
		{Code: "CYBER_STANFORD_ADV_PREVIEW", Title: "Advanced Cyber Security Preview", ShortDescription: "A snapshot of Stanford's Advanced Cybersecurity Program.", Category: "cyber", Organization: "Stanford Engineering", Level: "Intermediate", Duration: "1 hour", ExternalURL: "#", DetailPath: "/student/cybersecurity.html"},

		// Data analytics
		{Code: "DA_HARV_PY_RESEARCH", Title: "Using Python for Research", ShortDescription: "Covers Python programming, data analysis, and visualization with real case studies.", Category: "data-analytics", Organization: "Harvard University", Level: "Intermediate", Duration: "4-8 hours", ExternalURL: "#", DetailPath: "/student/dataanalytics.html"},
		{Code: "DA_IBM_DS_FUNDAMENTALS", Title: "Data Science Fundamentals", ShortDescription: "Covers data collection, cleaning, visualization, statistics, and Python basics.", Category: "data-analytics", Organization: "IBM SkillBuild", Level: "Intermediate", Duration: "20 hours", ExternalURL: "#", DetailPath: "/student/dataanalytics.html"},
		{Code: "DA_GL_INTRO_PANDAS", Title: "Introduction to Pandas", ShortDescription: "Covers data cleaning, manipulation, filtering, and grouping using Pandas.", Category: "data-analytics", Organization: "Great Learning", Level: "Beginner", Duration: "2.25 hours", ExternalURL: "#", DetailPath: "/student/dataanalytics.html"},
		{Code: "DA_GOOGLE_ANALYTICS", Title: "Google Data Analytics", ShortDescription: "Gain an immersive understanding of the practices and processes used by data analysts.", Category: "data-analytics", Organization: "Google", Level: "Beginner", Duration: "6 months", ExternalURL: "#", DetailPath: "/student/dataanalytics.html"},
		{Code: "DA_IBM_ML_DS", Title: "Machine Learning for Data Science", ShortDescription: "Covers supervised and unsupervised learning, regression, and clustering.", Category: "data-analytics", Organization: "IBM SkillBuild", Level: "Intermediate", Duration: "20 hours", ExternalURL: "#", DetailPath: "/student/dataanalytics.html"},
		{Code: "DA_MS_POWERBI_ANALYST", Title: "Microsoft Power BI Data Analyst", ShortDescription: "Learn to use Power BI tools, create dashboards, and integrate with Microsoft Fabric.", Category: "data-analytics", Organization: "Microsoft", Level: "Intermediate", Duration: "5 hours", ExternalURL: "#", DetailPath: "/student/dataanalytics.html"},

		// Data science
		{Code: "DS_STANFORD_ML_SPEC", Title: "Machine Learning Specialization", ShortDescription: "An in-depth introduction to machine learning, data mining, and statistical pattern recognition.", Category: "data-science", Organization: "Stanford University", Level: "Intermediate", Duration: "11 weeks", ExternalURL: "#", DetailPath: "/student/datascience.html"},
		{Code: "DS_MICHIGAN_PY_EVERYBODY", Title: "Python for Everybody", ShortDescription: "Learn to program and analyze data with Python, from basics to databases.", Category: "data-science", Organization: "University of Michigan", Level: "Beginner", Duration: "5 months", ExternalURL: "#", DetailPath: "/student/datascience.html"},
		{Code: "DS_IBM_DS_PROFESSIONAL", Title: "IBM Data Science Professional", ShortDescription: "Develop hands-on skills using data science tools and real-world projects.", Category: "data-science", Organization: "IBM", Level: "Beginner", Duration: "11 months", ExternalURL: "#", DetailPath: "/student/datascience.html"},
		{Code: "DS_HOPKINS_DS_SPEC", Title: "Data Science Specialization", ShortDescription: "Covers the full data science pipeline from Johns Hopkins University.", Category: "data-science", Organization: "Johns Hopkins", Level: "Intermediate", Duration: "10 months", ExternalURL: "#", DetailPath: "/student/datascience.html"},
		{Code: "DS_GOOGLE_ADV_DA", Title: "Google Advanced Data Analytics", ShortDescription: "Prepare for a data science career with Google's advanced analytics program.", Category: "data-science", Organization: "Google", Level: "Beginner", Duration: "6 months", ExternalURL: "#", DetailPath: "/student/datascience.html"},
		{Code: "DS_DLAI_NLP_SPEC", Title: "NLP Specialization", ShortDescription: "Enter the world of Natural Language Processing, from sentiment analysis to translation.", Category: "data-science", Organization: "DeepLearning.AI", Level: "Intermediate", Duration: "4 months", ExternalURL: "#", DetailPath: "/student/datascience.html"},

		// AI / ML
		{Code: "AIML_HARVARD_CS50_AI_PY", Title: "CS50's Intro to AI with Python", ShortDescription: "Covers search algorithms, neural networks, and more using Python.", Category: "ai-ml", Organization: "Harvard University", Level: "Intermediate", Duration: "7 weeks", ExternalURL: "#", DetailPath: "/student/aiml.html"},
		{Code: "AIML_IBM_AI_EVERYONE", Title: "AI For Everyone", ShortDescription: "AI basics, machine learning, neural networks, and real-world applications.", Category: "ai-ml", Organization: "IBM SkillBuild", Level: "Beginner", Duration: "6-8 hours", ExternalURL: "#", DetailPath: "/student/aiml.html"},
		{Code: "AIML_AWS_FUNDAMENTALS_ML", Title: "Fundamentals of Machine Learning", ShortDescription: "Basics of machine learning including threat awareness, data protection, and privacy.", Category: "ai-ml", Organization: "Amazon Web Services", Level: "Beginner", Duration: "1 hour", ExternalURL: "#", DetailPath: "/student/aiml.html"},
		{Code: "AIML_DLAI_AI_PY_BEGINNER", Title: "AI with Python for Beginners", ShortDescription: "Covers Python basics, NumPy, and simple AI applications.", Category: "ai-ml", Organization: "DeepLearning.AI", Level: "Beginner", Duration: "10 hours", ExternalURL: "#", DetailPath: "/student/aiml.html"},
		{Code: "AIML_AZURE_INTRO_AI", Title: "Introduction to AI in Azure", ShortDescription: "Covers Azure AI services, NLP, computer vision, and responsible AI.", Category: "ai-ml", Organization: "Microsoft Azure", Level: "Intermediate", Duration: "1 week", ExternalURL: "#", DetailPath: "/student/aiml.html"},
		{Code: "AIML_HARVARD_TINYML", Title: "Deploying TinyML", ShortDescription: "Run ML models on microcontrollers using TensorFlow Lite and IoT applications.", Category: "ai-ml", Organization: "Harvard University", Level: "Intermediate", Duration: "5 weeks", ExternalURL: "#", DetailPath: "/student/aiml.html"},

		// Software development
		{Code: "SD_HARVARD_CS50_INTRO", Title: "CS50's Intro to Computer Science", ShortDescription: "Covers programming, algorithms, data structures, and Python.", Category: "software-dev", Organization: "Harvard University", Level: "Intermediate", Duration: "11 weeks", ExternalURL: "#", DetailPath: "/student/softwaredevelopment.html"},
		{Code: "SD_SKILLINDIA_PYTHON", Title: "Python Programming", ShortDescription: "Covers Python syntax, data types, functions, and data structures.", Category: "software-dev", Organization: "Skill India", Level: "Intermediate", Duration: "20 hours", ExternalURL: "#", DetailPath: "/student/softwaredevelopment.html"},
		{Code: "SD_CURSA_MOBILE_APP", Title: "Mobile App Development", ShortDescription: "Master app development with React Native, JavaScript, and Redux.", Category: "software-dev", Organization: "Cursa", Level: "Intermediate", Duration: "21 hours 40 min", ExternalURL: "#", DetailPath: "/student/softwaredevelopment.html"},
		{Code: "SD_SIMPLILEARN_ANDROID", Title: "Android App Development", ShortDescription: "Build a strong foundation in Android app development fundamentals.", Category: "software-dev", Organization: "SimpliLearn", Level: "Beginner", Duration: "1 hour", ExternalURL: "#", DetailPath: "/student/softwaredevelopment.html"},
		{Code: "SD_HARVARD_SCRATCH", Title: "Intro to Programming with Scratch", ShortDescription: "Learn block-based coding, variables, loops, and logical thinking.", Category: "software-dev", Organization: "Harvard University", Level: "Beginner", Duration: "3 weeks", ExternalURL: "#", DetailPath: "/student/softwaredevelopment.html"},
		{Code: "SD_MICROSOFT_PY_BEGINNER", Title: "Python for Beginners", ShortDescription: "Get a strong foundation in Python for app development.", Category: "software-dev", Organization: "Microsoft", Level: "Beginner", Duration: "4 hours", ExternalURL: "#", DetailPath: "/student/softwaredevelopment.html"},
	}

	for i := range courses {
		courses[i].IsActive = true
	}

	return conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(&courses).Error
}

func seedGigBooks(conn *gorm.DB) error {
	books := []models.GigBook{
		{Title: ".NET Framework", Topic: ".NET / Backend", Provider: "GoalKicker", Link: "https://goalkicker.com/DotNETFrameworkBook/"},
		{Title: "Algorithms", Topic: "Algorithms / CS Fundamentals", Provider: "GoalKicker", Link: "https://goalkicker.com/AlgorithmsBook/"},
		{Title: "Android", Topic: "Android Development", Provider: "GoalKicker", Link: "https://goalkicker.com/AndroidBook/"},
		{Title: "Angular 2+", Topic: "Frontend Framework", Provider: "GoalKicker", Link: "https://goalkicker.com/Angular2Book/"},
		{Title: "Bash", Topic: "Shell / DevOps", Provider: "GoalKicker", Link: "https://goalkicker.com/BashBook/"},
		{Title: "C", Topic: "Programming Language", Provider: "GoalKicker", Link: "https://goalkicker.com/CBook/"},
		{Title: "C#", Topic: "Programming Language", Provider: "GoalKicker", Link: "https://goalkicker.com/CSharpBook/"},
		{Title: "C++", Topic: "Programming Language", Provider: "GoalKicker", Link: "https://goalkicker.com/CPlusPlusBook/"},
		{Title: "CSS", Topic: "Web / Frontend", Provider: "GoalKicker", Link: "https://goalkicker.com/CSSBook/"},
		{Title: "Git", Topic: "Version Control / DevOps", Provider: "GoalKicker", Link: "https://goalkicker.com/GitBook/"},
		{Title: "Haskell", Topic: "Functional Programming", Provider: "GoalKicker", Link: "https://goalkicker.com/HaskellBook/"},
		{Title: "HTML5", Topic: "Web / Frontend", Provider: "GoalKicker", Link: "https://goalkicker.com/HTML5Book/"},
		{Title: "iOS", Topic: "iOS / Mobile", Provider: "GoalKicker", Link: "https://goalkicker.com/iOSBook/"},
		{Title: "Java", Topic: "Programming Language", Provider: "GoalKicker", Link: "https://goalkicker.com/JavaBook/"},
		{Title: "JavaScript", Topic: "Web / Frontend", Provider: "GoalKicker", Link: "https://goalkicker.com/JavaScriptBook/"},
		{Title: "jQuery", Topic: "Web / Frontend", Provider: "GoalKicker", Link: "https://goalkicker.com/jQueryBook/"},
		{Title: "Kotlin", Topic: "Programming Language / Android", Provider: "GoalKicker", Link: "https://goalkicker.com/KotlinBook/"},
		{Title: "Linux", Topic: "OS / DevOps", Provider: "GoalKicker", Link: "https://goalkicker.com/LinuxBook/"},
		{Title: "MongoDB", Topic: "Database / NoSQL", Provider: "GoalKicker", Link: "https://goalkicker.com/MongoDBBook/"},
		{Title: "Python", Topic: "Programming / Data / Backend", Provider: "GoalKicker", Link: "https://goalkicker.com/PythonBook/"},
		{Title: "React JS", Topic: "Frontend Framework", Provider: "GoalKicker", Link: "https://goalkicker.com/ReactJSBook/"},
		{Title: "React Native", Topic: "Mobile / Cross-Platform", Provider: "GoalKicker", Link: "https://goalkicker.com/ReactNativeBook/"},
		{Title: "Ruby on Rails", Topic: "Web Framework", Provider: "GoalKicker", Link: "https://goalkicker.com/RubyOnRailsBook/"},
		{Title: "SQL", Topic: "Database / SQL", Provider: "GoalKicker", Link: "https://goalkicker.com/SQLBook/"},
		{Title: "Swift", Topic: "iOS / Programming", Provider: "GoalKicker", Link: "https://goalkicker.com/SwiftBook/"},
	}

	var count int64
	if err := conn.Model(&models.GigBook{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return conn.Create(&books).Error
}

func seedTrialProjects(conn *gorm.DB) error {
	trials := []models.TrialProject{
		{Code: "TRIAL_WEB_01", Title: "Portfolio Website for Student Developer", ShortDescription: "Build a responsive personal portfolio site with project gallery and contact form.", Domain: "web-development", SkillsRequired: "HTML, CSS, JavaScript, Responsive Design", Difficulty: "Beginner", EstimatedHours: 10, BudgetRange: "Unpaid trial"},
		{Code: "TRIAL_AI_01", Title: "Basic Spam Classifier for Emails", ShortDescription: "Create a simple ML model that classifies emails as spam or not spam using sample data.", Domain: "ai-ml", SkillsRequired: "Python, Scikit-learn, Data Preprocessing", Difficulty: "Intermediate", EstimatedHours: 15, BudgetRange: "Unpaid trial"},
		{Code: "TRIAL_DS_01", Title: "Sales Dashboard with Data Visualization", ShortDescription: "Build a dashboard showing monthly sales trends and KPIs using a CSV dataset.", Domain: "data-science", SkillsRequired: "Python, Pandas, Data Visualization, Excel/CSV handling", Difficulty: "Intermediate", EstimatedHours: 12, BudgetRange: "Unpaid trial"},
		{Code: "TRIAL_CYBER_01", Title: "Basic Vulnerability Assessment Report", ShortDescription: "Perform a simple security check on a sample web app and prepare a structured report.", Domain: "cybersecurity", SkillsRequired: "OWASP basics, Report writing, Security tools (basic)", Difficulty: "Intermediate", EstimatedHours: 8, BudgetRange: "Unpaid trial"},
	}

	return conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(&trials).Error
}
