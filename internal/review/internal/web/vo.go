package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/reviewme/reviewme/internal/review/internal/domain"
)

type SaveReq struct {
	ReviewRequestCode string     `json:"reviewRequestCode"`
	Answers           []AnswerVO `json:"answers"`
}

type AnswerVO struct {
	QuestionID        int64   `json:"questionId"`
	SelectedOptionIDs []int64 `json:"selectedOptionIds"`
	Text              string  `json:"text"`
}

type SaveResp struct {
	ReviewID int64 `json:"reviewId"`
}

type ListReq struct {
	ReviewRequestCode string `json:"reviewRequestCode"`
	GroupAccessCode   string `json:"groupAccessCode"`
}

type ListResp struct {
	Reviewee    string            `json:"revieweeName"`
	ProjectName string            `json:"projectName"`
	Reviews     []ReviewSummaryVO `json:"reviews"`
}

type ReviewSummaryVO struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt"`
	Preview   string `json:"preview"`
}

type DetailReq struct {
	ReviewRequestCode string `json:"reviewRequestCode"`
	GroupAccessCode   string `json:"groupAccessCode"`
	ReviewID          int64  `json:"reviewId"`
}

type DetailResp struct {
	ReviewID    int64               `json:"reviewId"`
	Reviewee    string              `json:"revieweeName"`
	ProjectName string              `json:"projectName"`
	CreatedAt   string              `json:"createdAt"`
	Sections    []AnsweredSectionVO `json:"sections"`
}

type AnsweredSectionVO struct {
	ID      int64                `json:"id"`
	Name    string               `json:"name"`
	Header  string               `json:"header"`
	Answers []AnsweredQuestionVO `json:"answers"`
}

type AnsweredQuestionVO struct {
	QuestionID      int64              `json:"questionId"`
	Content         string             `json:"content"`
	QuestionType    string             `json:"questionType"`
	SelectedOptions []SelectedOptionVO `json:"selectedOptions,omitempty"`
	Text            string             `json:"text,omitempty"`
}

type SelectedOptionVO struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

func (r SaveReq) toDomain() []domain.Answer {
	return slice.Map(r.Answers, func(idx int, src AnswerVO) domain.Answer {
		return domain.Answer{
			QuestionID:        src.QuestionID,
			SelectedOptionIDs: src.SelectedOptionIDs,
			Text:              src.Text,
		}
	})
}

func newListResp(received domain.ReceivedReviews) ListResp {
	return ListResp{
		Reviewee:    received.Reviewee,
		ProjectName: received.ProjectName,
		Reviews: slice.Map(received.Reviews, func(idx int, src domain.ReviewSummary) ReviewSummaryVO {
			return ReviewSummaryVO{
				ID:        src.ID,
				CreatedAt: src.CreatedAt.Format(time.RFC3339),
				Preview:   src.Preview,
			}
		}),
	}
}

func newDetailResp(detail domain.ReviewDetail) DetailResp {
	return DetailResp{
		ReviewID:    detail.ReviewID,
		Reviewee:    detail.Reviewee,
		ProjectName: detail.ProjectName,
		CreatedAt:   detail.CreatedAt.Format(time.RFC3339),
		Sections: slice.Map(detail.Sections, func(idx int, src domain.AnsweredSection) AnsweredSectionVO {
			return AnsweredSectionVO{
				ID:     src.ID,
				Name:   src.Name,
				Header: src.Header,
				Answers: slice.Map(src.Answers, func(idx int, src domain.AnsweredQuestion) AnsweredQuestionVO {
					return AnsweredQuestionVO{
						QuestionID:   src.QuestionID,
						Content:      src.Content,
						QuestionType: src.QuestionType,
						SelectedOptions: slice.Map(src.SelectedOptions, func(idx int, src domain.SelectedOption) SelectedOptionVO {
							return SelectedOptionVO{
								ID:      src.ID,
								Content: src.Content,
							}
						}),
						Text: src.Text,
					}
				}),
			}
		}),
	}
}
