package domain

// VisibleType 区块的可见性策略
type VisibleType string

const (
	// VisibleAlways 始终展示
	VisibleAlways VisibleType = "ALWAYS"
	// VisibleConditional 前面某个选项被选中之后才展示
	VisibleConditional VisibleType = "CONDITIONAL_ON_OPTION"
)

// QuestionType 题目类型，封闭枚举
type QuestionType string

const (
	QuestionTypeCheckbox QuestionType = "CHECKBOX"
	QuestionTypeText     QuestionType = "TEXT"
)

// Template 回顾表单的复用模板，纯引用数据。
// SectionIDs 已经按存储位置排好序。
type Template struct {
	ID         int64
	SectionIDs []int64
}

type Section struct {
	ID          int64
	Name        string
	VisibleType VisibleType
	// OnSelectedOptionID 条件可见时触发展示的选项
	OnSelectedOptionID int64
	Header             string
	// QuestionIDs 已经按存储位置排好序
	QuestionIDs []int64
}

type Question struct {
	ID        int64
	Required  bool
	Content   string
	Type      QuestionType
	Guideline string
}

func (q Question) HasGuideline() bool {
	return q.Guideline != ""
}

type OptionGroup struct {
	ID                int64
	QuestionID        int64
	MinSelectionCount int
	MaxSelectionCount int
}

type OptionItem struct {
	ID            int64
	OptionGroupID int64
	Content       string
}

// Form 按被评价者个性化之后的完整模板树，直接用于渲染
type Form struct {
	TemplateID  int64
	Reviewee    string
	ProjectName string
	Sections    []FormSection
}

type FormSection struct {
	ID                 int64
	Name               string
	VisibleType        VisibleType
	OnSelectedOptionID int64
	Header             string
	Questions          []FormQuestion
}

type FormQuestion struct {
	ID       int64
	Required bool
	Content  string
	Type     QuestionType
	// OptionGroup 没有选项组的题目为 nil
	OptionGroup  *FormOptionGroup
	HasGuideline bool
	Guideline    string
}

type FormOptionGroup struct {
	ID                int64
	MinSelectionCount int
	MaxSelectionCount int
	Options           []FormOption
}

type FormOption struct {
	ID      int64
	Content string
}
