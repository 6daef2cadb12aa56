package domain

import "time"

// Review 一次提交的完整评价
type Review struct {
	ID            int64
	ReviewGroupID int64
	TemplateID    int64
	Answers       []Answer
	CreatedAt     time.Time
}

// Answer 单个题目的作答。选择题填 SelectedOptionIDs，主观题填 Text。
type Answer struct {
	QuestionID        int64
	SelectedOptionIDs []int64
	Text              string
}

// HasText 是否包含主观作答
func (a Answer) HasText() bool {
	return a.Text != ""
}

// ReceivedReviews 某个回顾组收到的全部评价的摘要
type ReceivedReviews struct {
	Reviewee    string
	ProjectName string
	Reviews     []ReviewSummary
}

type ReviewSummary struct {
	ID        int64
	CreatedAt time.Time
	// Preview 第一条主观作答的内容，列表页展示用
	Preview string
}

// ReviewDetail 单条评价按模板结构重新组织之后的明细
type ReviewDetail struct {
	ReviewID    int64
	Reviewee    string
	ProjectName string
	CreatedAt   time.Time
	Sections    []AnsweredSection
}

type AnsweredSection struct {
	ID      int64
	Name    string
	Header  string
	Answers []AnsweredQuestion
}

type AnsweredQuestion struct {
	QuestionID      int64
	Content         string
	QuestionType    string
	SelectedOptions []SelectedOption
	Text            string
}

type SelectedOption struct {
	ID      int64
	Content string
}
