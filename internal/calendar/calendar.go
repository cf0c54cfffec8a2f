package calendar

import (
	"context"
	"fmt"

	util "github.com/yeonjeyeong/economy-lingo/internal/utils"
)

// Event is one scheduled economic release or meeting. Importance runs from
// 1 (minor) to 3 (market-moving).
type Event struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Title      string `json:"title"`
	Country    string `json:"country"`
	Importance int    `json:"importance"`
}

type template struct {
	day        int
	slot       int
	time       string
	title      string
	country    string
	importance int
}

// schedule covers the next seven days, three events per day.
var schedule = []template{
	{0, 1, "10:00", "한국은행 기준금리 발표", "한국", 3},
	{0, 2, "22:30", "미국 비농업 고용지표 (NFP)", "미국", 3},
	{0, 3, "16:00", "한국 소비자물가지수 (CPI)", "한국", 2},

	{1, 1, "10:30", "중국 제조업 구매관리자지수 (PMI)", "중국", 2},
	{1, 2, "18:00", "유럽중앙은행 (ECB) 통화정책 회의", "유럽", 3},
	{1, 3, "09:00", "한국 무역수지", "한국", 2},

	{2, 1, "23:00", "미국 ISM 제조업지수", "미국", 2},
	{2, 2, "08:50", "일본 GDP 성장률 (분기)", "일본", 2},
	{2, 3, "15:00", "한국 산업생산지수", "한국", 1},

	{3, 1, "22:30", "미국 소비자물가지수 (CPI)", "미국", 3},
	{3, 2, "17:00", "영국 소매판매", "영국", 2},
	{3, 3, "11:00", "중국 소비자물가지수 (CPI)", "중국", 2},

	{4, 1, "23:00", "미국 소비자신뢰지수", "미국", 2},
	{4, 2, "18:00", "독일 IFO 기업경기지수", "독일", 2},
	{4, 3, "14:00", "한국 설비투자지수", "한국", 1},

	{5, 1, "22:30", "미국 GDP 성장률 (분기)", "미국", 3},
	{5, 2, "09:00", "한국 실업률", "한국", 2},
	{5, 3, "08:30", "일본 소비자물가지수 (CPI)", "일본", 2},

	{6, 1, "10:00", "중국 소매판매", "중국", 2},
	{6, 2, "16:00", "유로존 제조업 PMI", "유럽", 2},
	{6, 3, "13:00", "한국 건설수주", "한국", 1},
}

type Service interface {
	Upcoming(ctx context.Context, country string) ([]Event, error)
}

type service struct{}

func NewService() Service {
	return &service{}
}

// Upcoming returns the seven-day schedule dated from today in KST,
// optionally filtered by country.
func (s *service) Upcoming(ctx context.Context, country string) ([]Event, error) {
	events := make([]Event, 0, len(schedule))
	for _, t := range schedule {
		if country != "" && t.country != country {
			continue
		}
		events = append(events, Event{
			ID:         fmt.Sprintf("evt-day%d-%d", t.day, t.slot),
			Date:       util.DaysFromNow(t.day),
			Time:       t.time,
			Title:      t.title,
			Country:    t.country,
			Importance: t.importance,
		})
	}
	return events, nil
}
