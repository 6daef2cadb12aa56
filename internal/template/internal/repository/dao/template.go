package dao

import (
	"context"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// ErrRecordNotFound 通用的数据没找到
var ErrRecordNotFound = gorm.ErrRecordNotFound

// TemplateDAO 模板侧全是只读的引用数据，由管理流程写入
type TemplateDAO interface {
	FindTemplateByID(ctx context.Context, id int64) (Template, error)
	// FindTemplateSections 按 position 升序
	FindTemplateSections(ctx context.Context, templateID int64) ([]TemplateSection, error)
	FindSectionByID(ctx context.Context, id int64) (Section, error)
	// FindSectionQuestions 按 position 升序
	FindSectionQuestions(ctx context.Context, sectionID int64) ([]SectionQuestion, error)
	FindQuestionByID(ctx context.Context, id int64) (Question, error)
	FindOptionGroupByQuestionID(ctx context.Context, questionID int64) (OptionGroup, error)
	// FindOptionItemsByGroupID 按存储顺序返回
	FindOptionItemsByGroupID(ctx context.Context, groupID int64) ([]OptionItem, error)
}

type GORMTemplateDAO struct {
	db *egorm.Component
}

func NewGORMTemplateDAO(db *egorm.Component) TemplateDAO {
	return &GORMTemplateDAO{
		db: db,
	}
}

func (d *GORMTemplateDAO) FindTemplateByID(ctx context.Context, id int64) (Template, error) {
	var t Template
	err := d.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return t, err
}

func (d *GORMTemplateDAO) FindTemplateSections(ctx context.Context, templateID int64) ([]TemplateSection, error) {
	var res []TemplateSection
	err := d.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Order("position ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMTemplateDAO) FindSectionByID(ctx context.Context, id int64) (Section, error) {
	var s Section
	err := d.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return s, err
}

func (d *GORMTemplateDAO) FindSectionQuestions(ctx context.Context, sectionID int64) ([]SectionQuestion, error) {
	var res []SectionQuestion
	err := d.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("position ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMTemplateDAO) FindQuestionByID(ctx context.Context, id int64) (Question, error) {
	var q Question
	err := d.db.WithContext(ctx).First(&q, "id = ?", id).Error
	return q, err
}

func (d *GORMTemplateDAO) FindOptionGroupByQuestionID(ctx context.Context, questionID int64) (OptionGroup, error) {
	var g OptionGroup
	err := d.db.WithContext(ctx).First(&g, "question_id = ?", questionID).Error
	return g, err
}

func (d *GORMTemplateDAO) FindOptionItemsByGroupID(ctx context.Context, groupID int64) ([]OptionItem, error) {
	var res []OptionItem
	err := d.db.WithContext(ctx).
		Where("option_group_id = ?", groupID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

type Template struct {
	ID    int64 `gorm:"primaryKey,autoIncrement"`
	Ctime int64
	Utime int64
}

// TemplateSection 模板到区块的有序关联，区块可以被多个模板复用
type TemplateSection struct {
	ID         int64 `gorm:"primaryKey,autoIncrement"`
	TemplateID int64 `gorm:"index;not null"`
	SectionID  int64 `gorm:"not null"`
	Position   int   `gorm:"not null"`
}

type Section struct {
	ID          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(64);not null"`
	VisibleType string `gorm:"type:varchar(32);not null"`
	// OnSelectedOptionID 条件可见时触发的选项，ALWAYS 时为 0
	OnSelectedOptionID int64
	Header             string `gorm:"type:varchar(512);not null"`
}

// SectionQuestion 区块到题目的有序关联
type SectionQuestion struct {
	ID         int64 `gorm:"primaryKey,autoIncrement"`
	SectionID  int64 `gorm:"index;not null"`
	QuestionID int64 `gorm:"not null"`
	Position   int   `gorm:"not null"`
}

type Question struct {
	ID           int64  `gorm:"primaryKey,autoIncrement"`
	Required     bool   `gorm:"not null"`
	Content      string `gorm:"type:varchar(512);not null"`
	QuestionType string `gorm:"type:varchar(16);not null"`
	Guideline    string `gorm:"type:varchar(1024)"`
}

// OptionGroup 一个题目至多一个选项组
type OptionGroup struct {
	ID                int64 `gorm:"primaryKey,autoIncrement"`
	QuestionID        int64 `gorm:"uniqueIndex;not null"`
	MinSelectionCount int   `gorm:"not null"`
	MaxSelectionCount int   `gorm:"not null"`
}

type OptionItem struct {
	ID            int64  `gorm:"primaryKey,autoIncrement"`
	OptionGroupID int64  `gorm:"index;not null"`
	Content       string `gorm:"type:varchar(255);not null"`
}
