package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrRecordNotFound 通用的数据没找到
var ErrRecordNotFound = gorm.ErrRecordNotFound

// ErrDuplicateRequestCode 请求码撞上了唯一索引
var ErrDuplicateRequestCode = errors.New("请求码已存在")

//go:generate mockgen -source=./review_group.go -package=daomocks -destination=../../../mocks/dao/review_group.mock.go ReviewGroupDAO
type ReviewGroupDAO interface {
	Insert(ctx context.Context, g ReviewGroup) (int64, error)
	FindByRequestCode(ctx context.Context, code string) (ReviewGroup, error)
	ExistsByRequestCode(ctx context.Context, code string) (bool, error)
	// FindByCodes 两个码放在同一个条件里查，避免泄露是哪一个错了
	FindByCodes(ctx context.Context, requestCode, accessCode string) (ReviewGroup, error)
	LatestTemplateID(ctx context.Context) (int64, error)
}

type GORMReviewGroupDAO struct {
	db *egorm.Component
}

func NewGORMReviewGroupDAO(db *egorm.Component) ReviewGroupDAO {
	return &GORMReviewGroupDAO{
		db: db,
	}
}

func (d *GORMReviewGroupDAO) Insert(ctx context.Context, g ReviewGroup) (int64, error) {
	now := time.Now().UnixMilli()
	g.Ctime = now
	g.Utime = now
	err := d.db.WithContext(ctx).Create(&g).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateRequestCode
		}
	}
	return g.ID, err
}

func (d *GORMReviewGroupDAO) FindByRequestCode(ctx context.Context, code string) (ReviewGroup, error) {
	var g ReviewGroup
	err := d.db.WithContext(ctx).First(&g, "review_request_code = ?", code).Error
	return g, err
}

func (d *GORMReviewGroupDAO) ExistsByRequestCode(ctx context.Context, code string) (bool, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&ReviewGroup{}).
		Where("review_request_code = ?", code).
		Count(&cnt).Error
	return cnt > 0, err
}

func (d *GORMReviewGroupDAO) FindByCodes(ctx context.Context, requestCode, accessCode string) (ReviewGroup, error) {
	var g ReviewGroup
	err := d.db.WithContext(ctx).
		First(&g, "review_request_code = ? AND group_access_code = ?", requestCode, accessCode).Error
	return g, err
}

// LatestTemplateID 查最新的模板，作为新建小组的默认绑定
func (d *GORMReviewGroupDAO) LatestTemplateID(ctx context.Context) (int64, error) {
	var id int64
	err := d.db.WithContext(ctx).Table("templates").
		Select("MAX(id)").Row().Scan(&id)
	return id, err
}

type ReviewGroup struct {
	ID          int64  `gorm:"primaryKey,autoIncrement"`
	Reviewee    string `gorm:"type:varchar(64);not null"`
	ProjectName string `gorm:"type:varchar(256);not null"`
	// 请求码对外公开，靠唯一索引兜底并发下的重复生成
	ReviewRequestCode string `gorm:"type:varchar(16);uniqueIndex;not null"`
	// 确认码是低敏口令，按原样存储、原样比较
	GroupAccessCode string `gorm:"type:varchar(64);not null"`
	TemplateID      int64  `gorm:"not null"`
	Ctime           int64
	Utime           int64
}
