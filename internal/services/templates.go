package services

import "github.com/terraincognita07/moveday/internal/models"

// ChecklistTemplate is one fixed, user-independent task definition. The
// catalog below is identical for every user; instances copy these fields at
// creation time and never re-read them.
type ChecklistTemplate struct {
	Key           string
	Title         string
	Description   string
	Category      string
	DDayRange     string
	MinOffsetDays int
	MaxOffsetDays int
	HasGuide      bool
	HasService    bool
}

// Offsets are advisory display ranges: negative days fall before the move,
// zero is moving day, positive days follow it. They increase down the list
// but nothing enforces that across categories.
var checklistTemplates = []ChecklistTemplate{
	{
		Key:           "select-movers",
		Title:         "이사업체 선정",
		Description:   "최소 3군데 견적 요청 후 예약 진행",
		Category:      models.CategoryPreparation,
		DDayRange:     "D-20 ~ D-15",
		MinOffsetDays: -20,
		MaxOffsetDays: -15,
		HasGuide:      true,
		HasService:    true,
	},
	{
		Key:           "book-cleaning",
		Title:         "입주청소 예약",
		Description:   "청소업체 미리 비교 예약",
		Category:      models.CategoryPreparation,
		DDayRange:     "D-15 ~ D-10",
		MinOffsetDays: -15,
		MaxOffsetDays: -10,
		HasGuide:      true,
		HasService:    true,
	},
	{
		Key:           "buy-supplies",
		Title:         "이사에 필요한 물품 구매",
		Description:   "박스, 테이프, 커터칼 등 필수 용품 준비",
		Category:      models.CategoryPreparation,
		DDayRange:     "D-10 ~ D-7",
		MinOffsetDays: -10,
		MaxOffsetDays: -7,
		HasGuide:      true,
		HasService:    true,
	},
	{
		Key:           "transfer-internet",
		Title:         "인터넷 이전 신청",
		Description:   "이사 당일 설치될 수 있도록 예약",
		Category:      models.CategoryPreparation,
		DDayRange:     "D-7 ~ D-5",
		MinOffsetDays: -7,
		MaxOffsetDays: -5,
		HasGuide:      true,
	},
	{
		Key:           "bulky-waste",
		Title:         "대형 폐기물 신고",
		Description:   "필요한 물품 폐기물 스티커 신청",
		Category:      models.CategoryPreparation,
		DDayRange:     "D-5 ~ D-2",
		MinOffsetDays: -5,
		MaxOffsetDays: -2,
		HasGuide:      true,
	},
	{
		Key:           "trash-bags",
		Title:         "쓰레기봉투 준비",
		Description:   "청소용 걸레, 봉투 등 마지막 정리용",
		Category:      models.CategoryPreparation,
		DDayRange:     "D-2 ~ D-1",
		MinOffsetDays: -2,
		MaxOffsetDays: -1,
		HasService:    true,
	},
	{
		Key:           "valuables",
		Title:         "귀중품 챙기기",
		Description:   "현금, 귀중품, 서류는 따로 보관",
		Category:      models.CategoryPreparation,
		DDayRange:     "D-1",
		MinOffsetDays: -1,
		MaxOffsetDays: -1,
		HasGuide:      true,
	},
	{
		Key:           "utility-settlement",
		Title:         "관리비/전기/가스/수도 정산",
		Description:   "출발 전 계량기 사진 필수",
		Category:      models.CategoryMovingDay,
		DDayRange:     "D-Day",
		MinOffsetDays: 0,
		MaxOffsetDays: 0,
		HasGuide:      true,
	},
	{
		Key:           "utility-registration",
		Title:         "전기/가스/수도 등록",
		Description:   "입주 후 사용 등록 필수",
		Category:      models.CategoryAfterMoving,
		DDayRange:     "D+1 ~ D+3",
		MinOffsetDays: 1,
		MaxOffsetDays: 3,
		HasGuide:      true,
	},
	{
		Key:           "internet-install",
		Title:         "인터넷 설치",
		Description:   "기사 방문 설치 확인",
		Category:      models.CategoryAfterMoving,
		DDayRange:     "D+1 ~ D+3",
		MinOffsetDays: 1,
		MaxOffsetDays: 3,
		HasService:    true,
	},
	{
		Key:           "move-in-report",
		Title:         "전입신고",
		Description:   "주소 변경 신고 (이사 후 14일 이내)",
		Category:      models.CategoryAfterMoving,
		DDayRange:     "D+1 ~ D+14",
		MinOffsetDays: 1,
		MaxOffsetDays: 14,
		HasGuide:      true,
	},
}

// ChecklistTemplates returns the template catalog in display order. The
// returned slice is a copy; callers may not mutate the catalog.
func ChecklistTemplates() []ChecklistTemplate {
	templates := make([]ChecklistTemplate, len(checklistTemplates))
	copy(templates, checklistTemplates)
	return templates
}
