package models

// GradeAll tags an article as relevant to every grade level.
const GradeAll = "all"

// Article is a portal news item. Dates are free-text as published by the
// school office ("Oct 26, 2023"); sorting on them is best-effort.
type Article struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
	Image   string `json:"image"`
	Grade   string `json:"grade"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// ArticleFilter narrows the news listing.
type ArticleFilter struct {
	Search    string
	Grade     string
	Subject   string
	StartDate string
	EndDate   string
}
