package taxonomy

// table maps canonical skill names to their entries. Synonym matching is
// case-insensitive substring matching over the whole input text; short
// synonyms can match inside longer words, which is accepted for
// compatibility with historical scores.
var table = map[string]Entry{
	// Programming languages
	"python": {
		Canonical: "python",
		Synonyms: []string{
			"python", "python programming", "python developer",
			"python3", "python 3", "core python", "python code",
			"python coder", "python scripting", "python scripts",
		},
		Resources: []string{
			"Python for Everybody – Coursera",
			"Complete Python Bootcamp – Udemy",
			"Google IT Automation with Python – Coursera",
			"Python Data Structures – Coursera",
			"Python Programming Masterclass – Udemy",
		},
	},
	"java": {
		Canonical: "java",
		Synonyms: []string{
			"java", "core java", "java programming", "java developer",
			"java8", "java 8", "java coder", "java backend",
		},
		Resources: []string{
			"Java Programming Masterclass – Udemy",
			"Object Oriented Programming in Java – Coursera",
			"Java for Beginners – Udemy",
		},
	},
	// The bare synonym "c" is deliberately absent: as a substring it matches
	// nearly every English text and made every job description "require" C.
	"c": {
		Canonical: "c",
		Synonyms: []string{
			"c language", "c programming", "c developer",
			"c coder", "ansi c",
		},
		Resources: []string{
			"C Programming For Beginners – Udemy",
			"Introduction to C – Coursera",
			"C Programming Masterclass – Udemy",
		},
	},
	"cpp": {
		Canonical: "cpp",
		Synonyms: []string{
			"c++", "cpp", "c plus plus", "c++ programming",
			"c++ developer", "c++ coder", "advanced c++",
		},
		Resources: []string{
			"Beginning C++ – Udemy",
			"C++ Complete Guide – Udemy",
			"Object-Oriented C++ – Coursera",
		},
	},
	"javascript": {
		Canonical: "javascript",
		Synonyms: []string{
			"javascript", "js", "ecmascript", "js developer",
			"javascript programming", "node javascript",
		},
		Resources: []string{
			"JavaScript: From Zero to Expert – Udemy",
			"Modern JavaScript Bootcamp – Udemy",
			"JavaScript Essentials – Coursera",
		},
	},
	"typescript": {
		Canonical: "typescript",
		Synonyms:  []string{"typescript", "ts", "typed javascript"},
		Resources: []string{
			"Understanding TypeScript – Udemy",
			"TypeScript for Beginners – Coursera",
		},
	},
	"sql": {
		Canonical: "sql",
		Synonyms: []string{
			"sql", "mysql", "postgresql", "sql server", "mssql",
			"oracle sql", "database querying", "rdbms", "sql developer",
			"pl/sql", "postgres", "mysql database",
		},
		Resources: []string{
			"SQL for Data Science – Coursera",
			"The Complete SQL Bootcamp – Udemy",
			"MySQL Bootcamp – Udemy",
			"SQL Server for Beginners – Udemy",
		},
	},
	"html": {
		Canonical: "html",
		Synonyms:  []string{"html", "html5", "web markup", "html coding"},
		Resources: []string{
			"HTML & CSS Bootcamp – Udemy",
			"HTML5 Basics – Coursera",
		},
	},
	"css": {
		Canonical: "css",
		Synonyms:  []string{"css", "css3", "tailwind css", "bootstrap", "style sheets"},
		Resources: []string{
			"CSS Complete Guide – Udemy",
			"Web Styling with CSS – Coursera",
		},
	},
	"react": {
		Canonical: "react",
		Synonyms: []string{
			"react", "react js", "reactjs", "react.js",
			"react developer", "frontend react",
		},
		Resources: []string{
			"React Frontend Developer – Coursera",
			"React Complete Guide – Udemy",
			"Modern React Bootcamp – Udemy",
		},
	},
	"node": {
		Canonical: "node",
		Synonyms: []string{
			"node", "nodejs", "node.js", "node developer",
			"backend node", "express js", "expressjs",
		},
		Resources: []string{
			"Node.js Developer Course – Udemy",
			"Backend Development with Node – Coursera",
		},
	},
	"php": {
		Canonical: "php",
		Synonyms: []string{
			"php", "php developer", "php programming",
			"laravel", "php coder",
		},
		Resources: []string{
			"PHP for Beginners – Udemy",
			"Laravel Masterclass – Udemy",
		},
	},
	"swift": {
		Canonical: "swift",
		Synonyms:  []string{"swift", "swift programming", "ios swift"},
		Resources: []string{
			"iOS App Development with Swift – Coursera",
			"Swift Programming Bootcamp – Udemy",
		},
	},
	"kotlin": {
		Canonical: "kotlin",
		Synonyms:  []string{"kotlin", "android kotlin", "kotlin programming"},
		Resources: []string{
			"Kotlin Bootcamp – Udemy",
			"Android Kotlin Course – Coursera",
		},
	},

	// Data science and machine learning
	"data science": {
		Canonical: "data science",
		Synonyms: []string{
			"data science", "data scientist", "data science projects",
			"data analysis", "data analytics", "applied data science",
			"data science workflow", "data scientist role",
		},
		Resources: []string{
			"IBM Data Science Professional Certificate – Coursera",
			"Google Data Analytics – Coursera",
			"Data Science A-Z – Udemy",
			"Applied Data Science with Python – Coursera",
		},
	},
	"machine learning": {
		Canonical: "machine learning",
		Synonyms: []string{
			"machine learning", "ml", "ml engineer", "ml algorithms",
			"supervised learning", "unsupervised learning",
			"machine learning models", "machine learning engineer",
		},
		Resources: []string{
			"Machine Learning by Andrew Ng – Coursera",
			"Complete Machine Learning Bootcamp – Udemy",
			"Machine Learning Specialization – Coursera",
		},
	},
	"deep learning": {
		Canonical: "deep learning",
		Synonyms: []string{
			"deep learning", "dl", "neural networks", "cnn", "rnn",
			"lstm", "transformers", "deep neural networks",
			"deeplearning", "deep learning engineer",
		},
		Resources: []string{
			"Deep Learning Specialization – Coursera",
			"Neural Networks & Deep Learning – Coursera",
			"Deep Learning with PyTorch – Udemy",
		},
	},
	"artificial intelligence": {
		Canonical: "artificial intelligence",
		Synonyms: []string{
			"ai", "artificial intelligence", "ai engineer",
			"ai models", "ai ml", "ai based systems",
		},
		Resources: []string{
			"AI For Everyone – Coursera",
			"AI Engineering with Microsoft – Udemy",
			"Introduction to AI – Coursera",
		},
	},
	"nlp": {
		Canonical: "nlp",
		Synonyms: []string{
			"nlp", "natural language processing", "text classification",
			"text mining", "nltk", "spacy", "transformer nlp",
		},
		Resources: []string{
			"Natural Language Processing Specialization – Coursera",
			"NLP with Deep Learning – Udemy",
			"Advanced NLP with Transformers – Coursera",
		},
	},
	"computer vision": {
		Canonical: "computer vision",
		Synonyms: []string{
			"computer vision", "cv", "object detection",
			"image processing", "opencv", "image classification",
		},
		Resources: []string{
			"Computer Vision with TensorFlow – Coursera",
			"OpenCV Complete Guide – Udemy",
			"Deep Learning for Computer Vision – Udemy",
		},
	},
	"pandas": {
		Canonical: "pandas",
		Synonyms: []string{
			"pandas", "python pandas", "dataframe handling",
			"data wrangling", "pandas library",
		},
		Resources: []string{
			"Data Analysis with Pandas – Coursera",
			"Pandas for Data Science – Udemy",
		},
	},
	"numpy": {
		Canonical: "numpy",
		Synonyms: []string{
			"numpy", "numerical python", "numpy arrays",
			"matrix operations numpy",
		},
		Resources: []string{
			"NumPy for Beginners – Udemy",
			"Python Scientific Computing – Coursera",
		},
	},
	"matplotlib": {
		Canonical: "matplotlib",
		Synonyms: []string{
			"matplotlib", "data visualization python",
			"plotting python", "pyplot", "graphs python",
		},
		Resources: []string{
			"Python Visualization Guide – Udemy",
			"Data Visualization with Python – Coursera",
		},
	},
	"seaborn": {
		Canonical: "seaborn",
		Synonyms:  []string{"seaborn", "sns python", "python visualization seaborn"},
		Resources: []string{
			"Seaborn Masterclass – Udemy",
			"Data Visualization with Python – Coursera",
		},
	},
	"scikit-learn": {
		Canonical: "scikit-learn",
		Synonyms: []string{
			"scikit learn", "sklearn", "machine learning sklearn",
			"ml models sklearn",
		},
		Resources: []string{
			"Sklearn Machine Learning – Coursera",
			"ML with Scikit-Learn – Udemy",
		},
	},
	"tensorflow": {
		Canonical: "tensorflow",
		Synonyms:  []string{"tensorflow", "tf", "tensorflow keras", "tf developer"},
		Resources: []string{
			"TensorFlow Developer Certificate – Coursera",
			"Deep Learning with TensorFlow – Udemy",
		},
	},
	"keras": {
		Canonical: "keras",
		Synonyms:  []string{"keras", "keras neural networks", "keras deep learning"},
		Resources: []string{
			"Advanced Keras – Udemy",
			"Deep Learning with Keras – Coursera",
		},
	},
	"pytorch": {
		Canonical: "pytorch",
		Synonyms: []string{
			"pytorch", "torch", "pytorch deep learning",
			"pytorch models", "pytorch neural networks",
		},
		Resources: []string{
			"Deep Learning with PyTorch – Udemy",
			"PyTorch Bootcamp – Coursera",
		},
	},

	// Cloud and containers
	"aws": {
		Canonical: "aws",
		Synonyms: []string{
			"aws", "amazon web services", "aws cloud",
			"aws lambda", "aws certified",
		},
		Resources: []string{
			"AWS Certified Cloud Practitioner – Coursera",
			"Ultimate AWS Certified Solutions Architect – Udemy",
		},
	},
	"azure": {
		Canonical: "azure",
		Synonyms:  []string{"azure", "microsoft azure", "azure cloud", "azure devops"},
		Resources: []string{
			"Microsoft Azure Fundamentals – Coursera",
			"AZ-900 Azure Fundamentals – Udemy",
		},
	},
	"docker": {
		Canonical: "docker",
		Synonyms:  []string{"docker", "docker container", "dockerfile", "containerization"},
		Resources: []string{
			"Docker Mastery – Udemy",
			"Containers with Docker – Coursera",
		},
	},
	"kubernetes": {
		Canonical: "kubernetes",
		Synonyms:  []string{"kubernetes", "k8s", "kubernetes cluster", "helm"},
		Resources: []string{
			"Kubernetes for Developers – Udemy",
			"Architecting with Kubernetes – Coursera",
		},
	},

	// Data engineering and tooling
	"data engineering": {
		Canonical: "data engineering",
		Synonyms: []string{
			"data engineering", "data engineer", "etl pipelines",
			"data pipelines", "big data engineering",
		},
		Resources: []string{
			"Google Cloud Data Engineering – Coursera",
			"Data Engineering Bootcamp – Udemy",
		},
	},
	"spark": {
		Canonical: "spark",
		Synonyms: []string{
			"spark", "apache spark", "pyspark", "spark sql",
			"spark data processing", "spark mllib",
		},
		Resources: []string{
			"Apache Spark with Python – Udemy",
			"Big Data with Spark – Coursera",
		},
	},
	"hadoop": {
		Canonical: "hadoop",
		Synonyms:  []string{"hadoop", "big data hadoop", "hdfs", "hadoop ecosystem"},
		Resources: []string{
			"Hadoop for Big Data – Udemy",
			"Big Data Engineering – Coursera",
		},
	},
	"airflow": {
		Canonical: "airflow",
		Synonyms: []string{
			"airflow", "apache airflow", "workflow orchestration airflow",
			"etl scheduling airflow",
		},
		Resources: []string{
			"Apache Airflow Bootcamp – Udemy",
			"Data Pipelines with Airflow – Coursera",
		},
	},
	"tableau": {
		Canonical: "tableau",
		Synonyms: []string{
			"tableau", "tableau dashboards", "tableau visualization",
			"bi tableau", "data viz tableau",
		},
		Resources: []string{
			"Tableau 2024 A-Z – Udemy",
			"Data Visualization with Tableau – Coursera",
		},
	},
	"power bi": {
		Canonical: "power bi",
		Synonyms: []string{
			"power bi", "microsoft powerbi", "bi dashboards",
			"powerbi reports", "power bi data modeling",
		},
		Resources: []string{
			"Power BI Desktop – Udemy",
			"Data Analysis with Power BI – Coursera",
		},
	},
	"excel": {
		Canonical: "excel",
		Synonyms: []string{
			"excel", "ms excel", "microsoft excel", "excel skills",
			"advanced excel", "excel spreadsheets", "excel formulas",
		},
		Resources: []string{
			"Excel Skills for Business – Coursera",
			"Advanced Excel – Udemy",
			"Excel Data Analysis – Coursera",
		},
	},
	"devops": {
		Canonical: "devops",
		Synonyms: []string{
			"dev ops", "dev-ops", "devops engineer",
			"ci/cd", "continuous integration", "continuous delivery",
			"infrastructure automation",
		},
		Resources: []string{
			"DevOps Engineer Course – Udemy",
			"DevOps on AWS – Coursera",
		},
	},
	"jenkins": {
		Canonical: "jenkins",
		Synonyms:  []string{"jenkins pipeline", "ci tool", "jenkins automation"},
		Resources: []string{"Jenkins for DevOps – Udemy"},
	},
	"shell scripting": {
		Canonical: "shell scripting",
		Synonyms: []string{
			"shell script", "bash scripting",
			"terminal scripting", "command line scripts",
		},
		Resources: []string{"Shell Scripting Basics – Udemy"},
	},
	"mongodb": {
		Canonical: "mongodb",
		Synonyms:  []string{"mongo db", "no sql", "nosql", "mongodb atlas"},
		Resources: []string{
			"MongoDB Complete Guide – Udemy",
			"NoSQL Databases – Coursera",
		},
	},
	"etl": {
		Canonical: "etl",
		Synonyms: []string{
			"extract transform load", "data pipeline",
			"etl pipeline", "data extraction",
		},
		Resources: []string{"ETL and Data Pipelines – Udemy"},
	},
	"business analysis": {
		Canonical: "business analysis",
		Synonyms:  []string{"business analyst", "ba skills", "requirements gathering"},
		Resources: []string{"Business Analysis Fundamentals – Udemy"},
	},
	"salesforce": {
		Canonical: "salesforce",
		Synonyms:  []string{"sales force", "crm salesforce", "salesforce admin", "sfdc"},
		Resources: []string{"Salesforce Administrator Bootcamp – Udemy"},
	},
	"project management": {
		Canonical: "project management",
		Synonyms: []string{
			"pm skills", "project planning",
			"agile project management", "agile methodology", "scrum",
		},
		Resources: []string{
			"Project Management Fundamentals – Coursera",
			"Agile Project Management – Udemy",
		},
	},
}
