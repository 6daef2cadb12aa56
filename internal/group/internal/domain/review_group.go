package domain

// ReviewGroup 一次回顾周期，按被评价者维度创建。
// ReviewRequestCode 用于定位小组，GroupAccessCode 用于查看结果的口令。
type ReviewGroup struct {
	ID                int64
	Reviewee          string
	ProjectName       string
	ReviewRequestCode string
	GroupAccessCode   string
	TemplateID        int64
	Ctime             int64
	Utime             int64
}
