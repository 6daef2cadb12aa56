package dao

import (
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// SeedDefaultTemplate 灌入默认模板。
// 模板是引用数据，线上由管理流程维护，这里只在空库时放一份，
// 方便本地起服务和跑集成测试。
func SeedDefaultTemplate(db *egorm.Component) error {
	var cnt int64
	if err := db.Model(&Template{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&Template{ID: 1}).Error; err != nil {
			return err
		}
		sections := []Section{
			{
				ID:          1,
				Name:        "印象与优点",
				VisibleType: "ALWAYS",
				Header:      "{revieweeName}在项目里给你留下了什么印象？",
			},
			{
				ID:                 2,
				Name:               "协作细节",
				VisibleType:        "CONDITIONAL_ON_OPTION",
				OnSelectedOptionID: 2,
				Header:             "再多说说你和{revieweeName}协作时的感受",
			},
		}
		if err := tx.Create(&sections).Error; err != nil {
			return err
		}
		if err := tx.Create(&[]TemplateSection{
			{TemplateID: 1, SectionID: 1, Position: 0},
			{TemplateID: 1, SectionID: 2, Position: 1},
		}).Error; err != nil {
			return err
		}
		questions := []Question{
			{
				ID:           1,
				Required:     true,
				Content:      "{revieweeName}哪些方面做得好？",
				QuestionType: "CHECKBOX",
			},
			{
				ID:           2,
				Required:     true,
				Content:      "结合具体场景，说说{revieweeName}的优点",
				QuestionType: "TEXT",
				Guideline:    "想不起来具体场景的话，写整体印象也可以",
			},
			{
				ID:           3,
				Required:     false,
				Content:      "有什么想悄悄告诉{revieweeName}的吗？",
				QuestionType: "TEXT",
			},
		}
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}
		if err := tx.Create(&[]SectionQuestion{
			{SectionID: 1, QuestionID: 1, Position: 0},
			{SectionID: 1, QuestionID: 2, Position: 1},
			{SectionID: 2, QuestionID: 3, Position: 0},
		}).Error; err != nil {
			return err
		}
		if err := tx.Create(&OptionGroup{
			ID:                1,
			QuestionID:        1,
			MinSelectionCount: 1,
			MaxSelectionCount: 2,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&[]OptionItem{
			{ID: 1, OptionGroupID: 1, Content: "推进项目的执行力"},
			{ID: 2, OptionGroupID: 1, Content: "沟通和协作"},
			{ID: 3, OptionGroupID: 1, Content: "技术深度"},
		}).Error
	})
}
