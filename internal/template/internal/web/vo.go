package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/reviewme/reviewme/internal/template/internal/domain"
)

type FormVO struct {
	FormID      int64       `json:"formId"`
	Reviewee    string      `json:"revieweeName"`
	ProjectName string      `json:"projectName"`
	Sections    []SectionVO `json:"sections"`
}

type SectionVO struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	VisibleType        string       `json:"visibleType"`
	OnSelectedOptionID int64        `json:"onSelectedOptionId,omitempty"`
	Header             string       `json:"header"`
	Questions          []QuestionVO `json:"questions"`
}

type QuestionVO struct {
	ID           int64          `json:"id"`
	Required     bool           `json:"required"`
	Content      string         `json:"content"`
	QuestionType string         `json:"questionType"`
	OptionGroup  *OptionGroupVO `json:"optionGroup,omitempty"`
	HasGuideline bool           `json:"hasGuideline"`
	Guideline    string         `json:"guideline,omitempty"`
}

type OptionGroupVO struct {
	ID                int64      `json:"id"`
	MinSelectionCount int        `json:"minSelectionCount"`
	MaxSelectionCount int        `json:"maxSelectionCount"`
	Options           []OptionVO `json:"options"`
}

type OptionVO struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

func newFormVO(form domain.Form) FormVO {
	return FormVO{
		FormID:      form.TemplateID,
		Reviewee:    form.Reviewee,
		ProjectName: form.ProjectName,
		Sections: slice.Map(form.Sections, func(idx int, src domain.FormSection) SectionVO {
			return newSectionVO(src)
		}),
	}
}

func newSectionVO(sec domain.FormSection) SectionVO {
	return SectionVO{
		ID:                 sec.ID,
		Name:               sec.Name,
		VisibleType:        string(sec.VisibleType),
		OnSelectedOptionID: sec.OnSelectedOptionID,
		Header:             sec.Header,
		Questions: slice.Map(sec.Questions, func(idx int, src domain.FormQuestion) QuestionVO {
			return newQuestionVO(src)
		}),
	}
}

func newQuestionVO(q domain.FormQuestion) QuestionVO {
	vo := QuestionVO{
		ID:           q.ID,
		Required:     q.Required,
		Content:      q.Content,
		QuestionType: string(q.Type),
		HasGuideline: q.HasGuideline,
		Guideline:    q.Guideline,
	}
	if q.OptionGroup != nil {
		vo.OptionGroup = &OptionGroupVO{
			ID:                q.OptionGroup.ID,
			MinSelectionCount: q.OptionGroup.MinSelectionCount,
			MaxSelectionCount: q.OptionGroup.MaxSelectionCount,
			Options: slice.Map(q.OptionGroup.Options, func(idx int, src domain.FormOption) OptionVO {
				return OptionVO{
					ID:      src.ID,
					Content: src.Content,
				}
			}),
		}
	}
	return vo
}
