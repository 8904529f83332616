package extract

// skillDictionary is the canonical list of technology and soft-skill
// terms recognized by the dictionary scan. Append-only constant data;
// every entry is lowercase because matching happens against the
// lowercased document.
var skillDictionary = []string{
	"javascript", "react", "node.js", "nodejs", "python", "java", "c++", "c#",
	"php", "ruby", "go",
	"html", "css", "sql", "mongodb", "mysql", "postgresql", "redis", "docker",
	"kubernetes",
	"aws", "azure", "gcp", "git", "github", "rest api", "graphql", "typescript",
	"angular",
	"vue", "jquery", "bootstrap", "tailwind", "express", "django", "flask",
	"spring",
	"redux", "mongoose", "sequelize", "linux", "unix", "bash", "restful",
	"microservices",
	"agile", "scrum", "jenkins", "ci/cd", "testing", "jest", "mocha", "selenium",
	"machine learning", "data science", "ai", "deep learning", "tensorflow",
	"pytorch",
	"flutter", "react native", "ios", "android", "swift", "kotlin", "figma",
	"photoshop",
	"communication", "leadership", "problem-solving", "problem solving",
	"teamwork", "time management",
	"web development", "software development", "full stack", "fullstack",
	"frontend", "backend",
	"database", "api", "rest", "json", "xml", "html5", "css3", "es6", "npm",
	"yarn",
	"jira", "confluence", "waterfall", "oop", "mvc", "restful api",
	"c", "c programming", "r", "matlab", "perl", "scala", "shell", "powershell",
	"firebase", "sqlite", "oracle", "mariadb", "cassandra", "elasticsearch",
	"heroku", "netlify", "vercel", "digitalocean",
	"vs code", "visual studio code", "eclipse", "intellij", "pycharm",
	"android studio",
	"postman", "swagger", "insomnia",
	"mern", "mean", "lamp", "mevn",
	"sass", "less", "webpack", "vite", "babel",
	"electron", "pwa", "spa", "ssr",
	"blockchain", "ethereum", "solidity", "web3",
	"arduino", "raspberry pi", "iot",
	"adobe xd", "sketch", "illustrator", "indesign",
	"tableau", "power bi", "excel", "spss", "sas",
}
