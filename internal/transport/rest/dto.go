package rest

import (
	"time"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newList[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items, Total: len(items)}
}

// mapSlice converts every element with fn.
func mapSlice[S, T any](in []S, fn func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

type farmResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Location  string    `json:"location,omitempty"`
	Owner     string    `json:"owner,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toFarmResponse(f *domain.Farm) farmResponse {
	return farmResponse{
		ID: f.ID, Name: f.Name, Code: f.Code,
		Location: f.Location, Owner: f.Owner, Phone: f.Phone,
		CreatedAt: f.CreatedAt, UpdatedAt: f.UpdatedAt,
	}
}

type animalResponse struct {
	ID                int64  `json:"id"`
	Tag               string `json:"tag"`
	Name              string `json:"name,omitempty"`
	BirthDate         *Date  `json:"birth_date"`
	Breed             string `json:"breed,omitempty"`
	Sex               string `json:"sex"`
	State             string `json:"state"`
	ReproductiveState string `json:"reproductive_state"`
	FarmID            int64  `json:"farm_id"`
	FarmName          string `json:"farm_name,omitempty"`
	MotherID          *int64 `json:"mother_id"`
}

func toAnimalResponse(a *domain.Animal) animalResponse {
	return animalResponse{
		ID: a.ID, Tag: a.Tag, Name: a.Name,
		BirthDate:         datePtr(a.BirthDate),
		Breed:             a.Breed,
		Sex:               a.Sex.String(),
		State:             a.State.String(),
		ReproductiveState: a.ReproductiveState.String(),
		FarmID:            a.FarmID,
		MotherID:          a.MotherID,
	}
}

type animalDetailResponse struct {
	animalResponse
	MotherTag     *string           `json:"mother_tag"`
	LatestWeight  *weighingResponse `json:"latest_weight"`
	AgeDays       *int              `json:"age_days"`
	OffspringTags []string          `json:"offspring_tags"`
}

func toAnimalDetailResponse(d *domain.AnimalDetail) animalDetailResponse {
	resp := animalDetailResponse{
		animalResponse: toAnimalResponse(d.Animal),
		MotherTag:      d.MotherTag,
		AgeDays:        d.AgeDays,
		OffspringTags:  d.OffspringTags,
	}
	resp.FarmName = d.FarmName
	if d.LatestWeight != nil {
		w := toWeighingResponse(d.LatestWeight)
		resp.LatestWeight = &w
	}
	if resp.OffspringTags == nil {
		resp.OffspringTags = []string{}
	}
	return resp
}

type weighingResponse struct {
	ID       int64   `json:"id"`
	Date     Date    `json:"date"`
	WeightKg float64 `json:"weight_kg"`
	AnimalID int64   `json:"animal_id"`
	FarmID   int64   `json:"farm_id"`
}

func toWeighingResponse(w *domain.Weighing) weighingResponse {
	return weighingResponse{ID: w.ID, Date: Date{w.Date}, WeightKg: w.WeightKg, AnimalID: w.AnimalID, FarmID: w.FarmID}
}

type birthResponse struct {
	ID           int64    `json:"id"`
	BirthDate    Date     `json:"birth_date"`
	MotherID     int64    `json:"mother_id"`
	MotherTag    string   `json:"mother_tag,omitempty"`
	OffspringID  *int64   `json:"offspring_id"`
	OffspringTag *string  `json:"offspring_tag"`
	FarmID       int64    `json:"farm_id"`
	WeightKg     *float64 `json:"weight_kg"`
	Breed        string   `json:"breed,omitempty"`
	Sex          string   `json:"sex"`
}

func toBirthResponse(b *domain.Birth) birthResponse {
	return birthResponse{
		ID: b.ID, BirthDate: Date{b.BirthDate},
		MotherID: b.MotherID, MotherTag: b.MotherTag,
		OffspringID: b.OffspringID, OffspringTag: b.OffspringTag,
		FarmID: b.FarmID, WeightKg: b.WeightKg, Breed: b.Breed, Sex: b.Sex.String(),
	}
}

type productionResponse struct {
	ID         int64    `json:"id"`
	Date       Date     `json:"date"`
	MorningKg  *float64 `json:"morning_kg"`
	EveningKg  *float64 `json:"evening_kg"`
	DailyTotal float64  `json:"daily_total"`
	AnimalID   int64    `json:"animal_id"`
	FarmID     int64    `json:"farm_id"`
}

func toProductionResponse(p *domain.MilkProduction) productionResponse {
	return productionResponse{
		ID: p.ID, Date: Date{p.Date}, MorningKg: p.MorningKg, EveningKg: p.EveningKg,
		DailyTotal: p.DailyTotal(), AnimalID: p.AnimalID, FarmID: p.FarmID,
	}
}

type exitResponse struct {
	ID            int64  `json:"id"`
	Date          Date   `json:"date"`
	Type          string `json:"type"`
	AnimalID      int64  `json:"animal_id"`
	ResponsibleID *int64 `json:"responsible_id"`
	Notes         string `json:"notes,omitempty"`
}

func toExitResponse(e *domain.ExitEvent) exitResponse {
	return exitResponse{
		ID: e.ID, Date: Date{e.Date}, Type: e.Type.String(),
		AnimalID: e.AnimalID, ResponsibleID: e.ResponsibleID, Notes: e.Notes,
	}
}

type transferResponse struct {
	ID                  int64     `json:"id"`
	TransferredAt       time.Time `json:"transferred_at"`
	AnimalID            int64     `json:"animal_id"`
	AnimalTag           string    `json:"animal_tag,omitempty"`
	OriginFarmID        int64     `json:"origin_farm_id"`
	OriginFarmName      string    `json:"origin_farm_name,omitempty"`
	DestinationFarmID   int64     `json:"destination_farm_id"`
	DestinationFarmName string    `json:"destination_farm_name,omitempty"`
	UserID              *int64    `json:"user_id"`
}

func toTransferResponse(t *domain.Transfer) transferResponse {
	return transferResponse{
		ID: t.ID, TransferredAt: t.TransferredAt,
		AnimalID: t.AnimalID, AnimalTag: t.AnimalTag,
		OriginFarmID: t.OriginFarmID, DestinationFarmID: t.DestinationFarmID,
		UserID: t.UserID,
	}
}

type sanitaryResponse struct {
	ID          int64   `json:"id"`
	Date        Date    `json:"date"`
	AnimalID    int64   `json:"animal_id"`
	AnimalTag   string  `json:"animal_tag,omitempty"`
	Diagnosis   string  `json:"diagnosis"`
	Treatment   string  `json:"treatment"`
	Symptoms    *string `json:"symptoms"`
	Responsible string  `json:"responsible"`
}

func toSanitaryResponse(e *domain.SanitaryEvent) sanitaryResponse {
	return sanitaryResponse{
		ID: e.ID, Date: Date{e.Date}, AnimalID: e.AnimalID, AnimalTag: e.AnimalTag,
		Diagnosis: e.Diagnosis, Treatment: e.Treatment, Symptoms: e.Symptoms,
		Responsible: e.Responsible,
	}
}

type inseminationResponse struct {
	ID            int64  `json:"id"`
	Date          Date   `json:"date"`
	AnimalID      int64  `json:"animal_id"`
	AnimalTag     string `json:"animal_tag,omitempty"`
	SemenType     string `json:"semen_type"`
	Inseminator   string `json:"inseminator"`
	ResponsibleID int64  `json:"responsible_id"`
	Confirmed     bool   `json:"confirmed"`
}

func toInseminationResponse(i *domain.Insemination) inseminationResponse {
	return inseminationResponse{
		ID: i.ID, Date: Date{i.Date}, AnimalID: i.AnimalID, AnimalTag: i.AnimalTag,
		SemenType: i.SemenType, Inseminator: i.Inseminator,
		ResponsibleID: i.ResponsibleID, Confirmed: i.Confirmed,
	}
}

type confirmationResponse struct {
	ID             int64   `json:"id"`
	InseminationID int64   `json:"insemination_id"`
	AnimalTag      string  `json:"animal_tag,omitempty"`
	ConfirmedOn    Date    `json:"confirmed_on"`
	Method         string  `json:"method"`
	Result         string  `json:"result"`
	Responsible    string  `json:"responsible"`
	Notes          *string `json:"notes"`
}

func toConfirmationResponse(c *domain.GestationConfirmation) confirmationResponse {
	return confirmationResponse{
		ID: c.ID, InseminationID: c.InseminationID, AnimalTag: c.AnimalTag,
		ConfirmedOn: Date{c.ConfirmedOn}, Method: c.Method, Result: c.Result.String(),
		Responsible: c.Responsible, Notes: c.Notes,
	}
}

type userResponse struct {
	ID             int64     `json:"id"`
	DocumentID     string    `json:"document_id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	RoleName       string    `json:"role_name"`
	IsActive       bool      `json:"is_active"`
	IsTempPassword bool      `json:"is_temp_password"`
	CreatedAt      time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID: u.ID, DocumentID: u.DocumentID, Email: u.Email,
		FirstName: u.FirstName, LastName: u.LastName, FullName: u.FullName(),
		Role: u.Role.String(), RoleName: u.Role.DisplayName(),
		IsActive: u.IsActive, IsTempPassword: u.IsTempPassword,
		CreatedAt: u.CreatedAt,
	}
}

type farmCountResponse struct {
	FarmID   int64  `json:"farm_id"`
	FarmName string `json:"farm_name"`
	Count    int64  `json:"count"`
}

type farmAverageResponse struct {
	FarmID   int64   `json:"farm_id"`
	FarmName string  `json:"farm_name"`
	Average  float64 `json:"average"`
}

type dashboardResponse struct {
	ExitsByType              map[string]int64      `json:"exits_by_type"`
	TransferCount            int64                 `json:"transfer_count"`
	PregnantCount            int64                 `json:"pregnant_count"`
	ActiveFemales            int64                 `json:"active_females"`
	AnimalsPerFarm           []farmCountResponse   `json:"animals_per_farm"`
	FarmCount                int64                 `json:"farm_count"`
	BirthCount               int64                 `json:"birth_count"`
	AvgProductionPerFarm     []farmAverageResponse `json:"avg_production_per_farm"`
	TotalProductionKg        float64               `json:"total_production_kg"`
	SanitaryEventCount       int64                 `json:"sanitary_event_count"`
	SanitaryEventsPerFarm    []farmCountResponse   `json:"sanitary_events_per_farm"`
	InseminationCount        int64                 `json:"insemination_count"`
	PendingInseminationCount int64                 `json:"pending_insemination_count"`
}

func toFarmCounts(in []domain.FarmCount) []farmCountResponse {
	return mapSlice(in, func(c domain.FarmCount) farmCountResponse {
		return farmCountResponse{FarmID: c.FarmID, FarmName: c.FarmName, Count: c.Count}
	})
}

func toDashboardResponse(d *domain.Dashboard) dashboardResponse {
	exits := make(map[string]int64, len(d.ExitsByType))
	for t, n := range d.ExitsByType {
		exits[t.String()] = n
	}
	return dashboardResponse{
		ExitsByType:    exits,
		TransferCount:  d.TransferCount,
		PregnantCount:  d.PregnantCount,
		ActiveFemales:  d.ActiveFemales,
		AnimalsPerFarm: toFarmCounts(d.AnimalsPerFarm),
		FarmCount:      d.FarmCount,
		BirthCount:     d.BirthCount,
		AvgProductionPerFarm: mapSlice(d.AvgProductionPerFarm, func(a domain.FarmAverage) farmAverageResponse {
			return farmAverageResponse{FarmID: a.FarmID, FarmName: a.FarmName, Average: a.Average}
		}),
		TotalProductionKg:        d.TotalProductionKg,
		SanitaryEventCount:       d.SanitaryEventCount,
		SanitaryEventsPerFarm:    toFarmCounts(d.SanitaryEventsPerFarm),
		InseminationCount:        d.InseminationCount,
		PendingInseminationCount: d.PendingInseminationCount,
	}
}
