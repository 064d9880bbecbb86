package catalog

// corePhases is the shared 25-week full-stack sequence. Every
// specialization references this slice and appends one phase.
var corePhases = []Phase{
	{
		PhaseNumber: 1,
		Title:       "Foundations",
		WeekRange:   "Weeks 1–3",
		Topics: []Topic{
			{ID: "html-fundamentals", Title: "HTML5 Fundamentals", EstimatedHours: 3, URL: "https://www.youtube.com/watch?v=qz0aGYrrlhU"},
			{ID: "css3-responsive", Title: "CSS3 & Responsive Design", EstimatedHours: 4, URL: "https://www.youtube.com/watch?v=0hrJGWrCux0"},
			{ID: "flexbox-grid", Title: "Flexbox & Grid", EstimatedHours: 3, URL: "https://www.youtube.com/watch?v=gT6rHhOZEO0"},
			{ID: "vscode-setup", Title: "VS Code Setup & Productivity", EstimatedHours: 1, URL: "https://www.youtube.com/watch?v=ifTF3ags0XI"},
			{ID: "chrome-devtools", Title: "Chrome DevTools", EstimatedHours: 1.5, URL: "https://www.youtube.com/watch?v=gTVpBbFWry8"},
		},
	},
	{
		PhaseNumber: 2,
		Title:       "JavaScript",
		WeekRange:   "Weeks 4–7",
		Topics: []Topic{
			{ID: "es6-essentials", Title: "ES6+ Essentials", EstimatedHours: 3, URL: "https://www.youtube.com/watch?v=NCwa_xi0Uuc"},
			{ID: "dom-manipulation", Title: "DOM Manipulation", EstimatedHours: 4, URL: "https://www.youtube.com/watch?v=5fb2aPlgoys"},
			{ID: "async-programming", Title: "Async Programming (Promises, async/await)", EstimatedHours: 2, URL: "https://www.youtube.com/watch?v=ZYb_ZU8LNxs"},
			{ID: "typescript-basics", Title: "TypeScript Basics", EstimatedHours: 3, URL: "https://www.youtube.com/watch?v=ZvZ7gvcmPmI"},
			{ID: "oop-js", Title: "OOP in JavaScript", EstimatedHours: 3, URL: "https://www.youtube.com/watch?v=PFmuCDHHpwk"},
			{ID: "event-loop", Title: "Event Loop", EstimatedHours: 1.5, URL: "https://www.youtube.com/watch?v=4IYcwOfW3BM"},
		},
	},
	{
		PhaseNumber: 3,
		Title:       "Frontend Framework (React)",
		WeekRange:   "Weeks 8–12",
		Topics: []Topic{
			{ID: "react-fundamentals", Title: "React Fundamentals & Components", EstimatedHours: 7, URL: "https://www.youtube.com/watch?v=DLX62G4lc44"},
			{ID: "react-hooks", Title: "Hooks (useState, useEffect, useContext)", EstimatedHours: 3, URL: "https://www.youtube.com/watch?v=HnXPKtro4SM&t=3s"},
			{ID: "state-management", Title: "State Management", EstimatedHours: 4, URL: "https://www.youtube.com/watch?v=-bEzt5ISACA"},
			{ID: "react-routing", Title: "Routing (React Router)", EstimatedHours: 2, URL: "https://www.youtube.com/watch?v=943D7U74_sQ"},
			{ID: "nextjs-basics", Title: "Next.js Basics", EstimatedHours: 3, URL: "https://www.youtube.com/watch?v=ZVnjOPwW4ZA"},
		},
	},
	{
		PhaseNumber: 4,
		Title:       "Backend Development",
		WeekRange:   "Weeks 13–17",
		Topics: []Topic{
			{ID: "nodejs-express", Title: "Node.js & Express.js", EstimatedHours: 10, URL: "https://www.youtube.com/watch?v=Oe421EPjeBE"},
			{ID: "rest-api", Title: "REST API Design", EstimatedHours: 2, URL: "https://www.youtube.com/watch?v=rtWH70_MMHM"},
			{ID: "auth-jwt", Title: "Authentication (JWT, OAuth)", EstimatedHours: 2, URL: "https://www.youtube.com/watch?v=nI8PYZNFtac"},
			{ID: "websockets", Title: "WebSockets", EstimatedHours: 3, URL: "https://www.youtube.com/watch?v=CzcfeL7ymbU"},
			{ID: "deployment", Title: "Deployment (Nginx, Cloud)", EstimatedHours: 2, URL: "https://www.youtube.com/watch?v=9t9Mp0BGnyI"},
		},
	},
	{
		PhaseNumber: 5,
		Title:       "Databases",
		WeekRange:   "Weeks 18–21",
		Topics: []Topic{
			{ID: "sql-postgresql", Title: "SQL Fundamentals (PostgreSQL)", EstimatedHours: 6, URL: "https://www.youtube.com/watch?v=qw--VYLpxG4"},
			{ID: "nosql-mongodb", Title: "NoSQL (MongoDB)", EstimatedHours: 3, URL: "https://www.youtube.com/watch?v=c2M-rlkkT5o"},
			{ID: "orm-prisma", Title: "ORM (Prisma / Mongoose)", EstimatedHours: 3, URL: "https://www.youtube.com/watch?v=gimSKEsWYb4"},
			{ID: "db-design", Title: "Database Design Patterns", EstimatedHours: 6, URL: "https://www.youtube.com/watch?v=26ls5lNiijk"},
		},
	},
	{
		PhaseNumber: 6,
		Title:       "Product Developer Skills",
		WeekRange:   "Weeks 22–25",
		Topics: []Topic{
			{ID: "ship-projects", Title: "Build & Ship 4 Novel Projects", EstimatedHours: 40},
			{ID: "case-studies", Title: "Write Project Case Studies", EstimatedHours: 3, URL: "https://www.youtube.com/watch?v=Mj9IGfINV1A"},
			{ID: "linkedin-optimise", Title: "LinkedIn Profile Optimization", EstimatedHours: 1.5, URL: "https://www.youtube.com/watch?v=K6uO-52UHTw"},
			{ID: "resume-prep", Title: "Resume Preparation", EstimatedHours: 4},
			{ID: "github-portfolio", Title: "GitHub Portfolio Curation", EstimatedHours: 4},
			{ID: "mock-interview", Title: "Mock Interview Practice", EstimatedHours: 8},
		},
	},
}

var aiPhase = Phase{
	PhaseNumber: 7,
	Title:       "AI Integration",
	WeekRange:   "Weeks 26–30",
	Topics: []Topic{
		{ID: "ai-llm-intro", Title: "Introduction to LLMs & Transformers", EstimatedHours: 6},
		{ID: "prompt-engineering", Title: "Prompt Engineering", EstimatedHours: 6},
		{ID: "openai-api", Title: "OpenAI / Anthropic API Integration", EstimatedHours: 8},
		{ID: "langchain", Title: "LangChain Fundamentals", EstimatedHours: 8},
		{ID: "rag", Title: "RAG (Retrieval-Augmented Generation)", EstimatedHours: 8},
		{ID: "vector-db", Title: "Vector Databases (Pinecone)", EstimatedHours: 6},
		{ID: "ai-features", Title: "Building AI-Powered Features", EstimatedHours: 10},
		{ID: "huggingface", Title: "Hugging Face Models", EstimatedHours: 6},
		{ID: "ai-project", Title: "AI Project: Build an AI-powered product", EstimatedHours: 20},
	},
}

var dsPhase = Phase{
	PhaseNumber: 7,
	Title:       "Data Science",
	WeekRange:   "Weeks 26–34",
	Topics: []Topic{
		{ID: "python-ds", Title: "Python for Data Science (Pandas, NumPy)", EstimatedHours: 12},
		{ID: "stats-probability", Title: "Statistics & Probability", EstimatedHours: 10},
		{ID: "data-viz", Title: "Data Visualization (Matplotlib, Seaborn)", EstimatedHours: 8},
		{ID: "ml-fundamentals", Title: "Machine Learning Fundamentals", EstimatedHours: 10},
		{ID: "supervised-learning", Title: "Supervised Learning (Regression, Classification)", EstimatedHours: 10},
		{ID: "unsupervised-learning", Title: "Unsupervised Learning (Clustering)", EstimatedHours: 8},
		{ID: "sklearn", Title: "Scikit-learn", EstimatedHours: 8},
		{ID: "model-eval", Title: "Model Evaluation & Tuning", EstimatedHours: 6},
		{ID: "ds-project", Title: "DS Project: Build a data-driven product", EstimatedHours: 20},
	},
}

var analyticsPhase = Phase{
	PhaseNumber: 7,
	Title:       "Data Analytics",
	WeekRange:   "Weeks 26–32",
	Topics: []Topic{
		{ID: "sql-analytics", Title: "SQL for Analytics (Advanced Queries)", EstimatedHours: 10},
		{ID: "python-analysis", Title: "Python for Analysis (Pandas)", EstimatedHours: 8},
		{ID: "data-cleaning", Title: "Data Cleaning & Wrangling", EstimatedHours: 8},
		{ID: "tableau-powerbi", Title: "Tableau / Power BI Fundamentals", EstimatedHours: 10},
		{ID: "dashboard-design", Title: "Dashboard Design", EstimatedHours: 6},
		{ID: "ab-testing", Title: "A/B Testing & Experimentation", EstimatedHours: 6},
		{ID: "product-analytics", Title: "Product Analytics Concepts", EstimatedHours: 6},
		{ID: "analytics-project", Title: "Analytics Project: Build an analytics dashboard", EstimatedHours: 20},
	},
}

var devopsPhase = Phase{
	PhaseNumber: 7,
	Title:       "DevOps",
	WeekRange:   "Weeks 26–32",
	Topics: []Topic{
		{ID: "linux-shell", Title: "Linux & Shell Scripting", EstimatedHours: 8},
		{ID: "docker", Title: "Docker & Containerization", EstimatedHours: 10},
		{ID: "kubernetes", Title: "Kubernetes Basics", EstimatedHours: 8},
		{ID: "cicd", Title: "CI/CD Pipelines (GitHub Actions)", EstimatedHours: 8},
		{ID: "cloud-platforms", Title: "Cloud Platforms (AWS / GCP basics)", EstimatedHours: 10},
		{ID: "monitoring", Title: "Monitoring & Logging", EstimatedHours: 6},
		{ID: "iac", Title: "Infrastructure as Code (Terraform basics)", EstimatedHours: 6},
		{ID: "devops-project", Title: "DevOps Project: Fully automated deployment pipeline", EstimatedHours: 20},
	},
}

var projectIdeas = map[string][]string{
	"fs-core": {
		"A personal finance tracker with bank statement CSV import",
		"A neighborhood event board with geolocation",
		"A recipe scaling app that adjusts ingredients by servings",
		"A habit tracker with streak visualization",
	},
	"fs-ai": {
		"An AI-powered meeting notes summarizer",
		"A document Q&A tool using RAG",
		"A smart email draft assistant",
		"An AI code reviewer for GitHub PRs",
	},
	"fs-ds": {
		"A movie recommendation engine",
		"A sentiment analysis dashboard for product reviews",
		"A predictive pricing tool for used electronics",
		"A health metrics anomaly detector",
	},
	"fs-analytics": {
		"A YouTube channel analytics dashboard",
		"An e-commerce funnel visualizer",
		"A personal spending insights tool",
		"A Spotify listening pattern analyzer",
	},
	"fs-devops": {
		"A self-hosted status page with uptime monitoring",
		"A zero-downtime deployment demo with blue/green switching",
		"A log aggregation dashboard",
		"An automated security scanning pipeline",
	},
}
