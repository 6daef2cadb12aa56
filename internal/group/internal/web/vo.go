package web

type CreateReq struct {
	Reviewee        string `json:"revieweeName"`
	ProjectName     string `json:"projectName"`
	GroupAccessCode string `json:"groupAccessCode"`
}

type CreateResp struct {
	ReviewRequestCode string `json:"reviewRequestCode"`
}

type CheckReq struct {
	ReviewRequestCode string `json:"reviewRequestCode"`
	GroupAccessCode   string `json:"groupAccessCode"`
}

type CheckResp struct {
	HasAccess bool `json:"hasAccess"`
}

type TokenReq struct {
	ReviewRequestCode string `json:"reviewRequestCode"`
	GroupAccessCode   string `json:"groupAccessCode"`
}

type TokenResp struct {
	ReviewRequestToken string `json:"reviewRequestToken"`
}

type SummaryResp struct {
	Reviewee    string `json:"revieweeName"`
	ProjectName string `json:"projectName"`
}
