package template

import (
	"github.com/reviewme/reviewme/internal/template/internal/domain"
	"github.com/reviewme/reviewme/internal/template/internal/service"
	"github.com/reviewme/reviewme/internal/template/internal/web"
)

type Handler = web.Handler
type Service = service.TemplateService

type Form = domain.Form
type FormSection = domain.FormSection
type FormQuestion = domain.FormQuestion
type FormOptionGroup = domain.FormOptionGroup
type FormOption = domain.FormOption

type VisibleType = domain.VisibleType
type QuestionType = domain.QuestionType

const (
	VisibleAlways      = domain.VisibleAlways
	VisibleConditional = domain.VisibleConditional

	QuestionTypeCheckbox = domain.QuestionTypeCheckbox
	QuestionTypeText     = domain.QuestionTypeText
)

var ErrDataIntegrity = service.ErrDataIntegrity

type Module struct {
	Hdl *Handler
	Svc Service
}
