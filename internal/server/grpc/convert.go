package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/duetdiary/internal/proto"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/server/services"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Dates travel as "2006-01-02" strings; an empty string means unset.

func dateString(d *timex.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toSnapshot(s *models.RevealSnapshot) *pb.Snapshot {
	return &pb.Snapshot{
		Id:         s.ID,
		CoupleId:   s.CoupleID,
		Year:       int32(s.Year),
		Stats:      toStats(s.Stats),
		RevealedAt: timestamp(s.RevealedAt),
	}
}

func toStats(st models.RevealStats) *pb.RevealStats {
	out := &pb.RevealStats{
		TotalEntries:    int32(st.TotalEntries),
		PartnerA:        toPartnerStats(st.PartnerA),
		PartnerB:        toPartnerStats(st.PartnerB),
		Media:           &pb.MediaCounts{Images: int32(st.Media.Images), Videos: int32(st.Media.Videos)},
		FirstEntryDate:  dateString(st.FirstEntryDate),
		LastEntryDate:   dateString(st.LastEntryDate),
		Locations:       make([]*pb.EntryLocation, 0, len(st.Locations)),
		UniqueLocations: int32(st.UniqueLocations),
	}
	if st.Year != nil {
		out.Year = int32(*st.Year)
	}
	if m := st.MostActiveMonth; m != nil {
		out.MostActiveMonth = &pb.MonthActivity{Month: int32(m.Month), Count: int32(m.Count)}
	}
	if e := st.LongestEntry; e != nil {
		out.LongestEntry = &pb.LongestEntry{
			EntryId:   e.EntryID,
			AuthorId:  e.AuthorID,
			Date:      e.Date.String(),
			WordCount: int32(e.WordCount),
		}
	}
	for _, l := range st.Locations {
		out.Locations = append(out.Locations, &pb.EntryLocation{
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
			Name:      l.Name,
			AuthorId:  l.AuthorID,
			Date:      l.Date.String(),
		})
	}
	return out
}

func toPartnerStats(p models.PartnerStats) *pb.PartnerStats {
	out := &pb.PartnerStats{
		UserId:        p.UserID,
		EntryCount:    int32(p.EntryCount),
		WordCount:     int32(p.WordCount),
		AverageHour:   p.AverageHour,
		LongestStreak: int32(p.LongestStreak),
		TopMood:       p.TopMood,
	}
	if p.TopWeekday != nil {
		out.TopWeekday = p.TopWeekday.String()
	}
	return out
}

func toConfig(c models.CheckpointConfig) *pb.CheckpointConfig {
	out := &pb.CheckpointConfig{
		Id:           c.ID,
		Frequency:    string(c.Frequency),
		SpecificDate: dateString(c.SpecificDate),
		Label:        c.Label,
		IsActive:     c.IsActive,
		CreatedAt:    timestamp(c.CreatedAt),
	}
	if c.DayOfMonth != nil {
		out.DayOfMonth = int32(*c.DayOfMonth)
	}
	for _, m := range c.Months {
		out.Months = append(out.Months, int32(m))
	}
	return out
}

func toConfigs(in []models.CheckpointConfig) []*pb.CheckpointConfig {
	out := make([]*pb.CheckpointConfig, 0, len(in))
	for _, c := range in {
		out = append(out, toConfig(c))
	}
	return out
}

// fromConfig converts a client config. A zero day_of_month and an empty
// specific_date mean unset; schedule rules are checked by the service.
func fromConfig(c *pb.CheckpointConfig) (models.CheckpointConfig, error) {
	out := models.CheckpointConfig{
		ID:        c.GetId(),
		Frequency: models.Frequency(c.GetFrequency()),
		Label:     c.GetLabel(),
		IsActive:  c.GetIsActive(),
	}
	if out.ID != "" {
		if err := validateID("config.id", out.ID); err != nil {
			return out, err
		}
	}
	if day := c.GetDayOfMonth(); day != 0 {
		d := int(day)
		out.DayOfMonth = &d
	}
	for _, m := range c.GetMonths() {
		out.Months = append(out.Months, time.Month(m))
	}
	if s := c.GetSpecificDate(); s != "" {
		d, err := timex.ParseDate(s)
		if err != nil {
			return out, status.Errorf(codes.InvalidArgument, "specific_date %q is not a date", s)
		}
		out.SpecificDate = &d
	}
	return out, nil
}

func toEntry(e *models.Entry) *pb.Entry {
	out := &pb.Entry{
		Id:           e.ID,
		AuthorId:     e.AuthorID,
		Date:         e.Date.String(),
		Title:        e.Title,
		Body:         e.Body,
		WordCount:    int32(e.WordCount),
		Mood:         e.Mood,
		HasLocation:  e.HasLocation(),
		LocationName: e.LocationName,
		CreatedAt:    timestamp(e.CreatedAt),
	}
	if out.HasLocation {
		out.Latitude, out.Longitude = *e.Latitude, *e.Longitude
	}
	return out
}

func toCheckpointEntryResponse(r *services.CheckpointResult) *pb.GetCheckpointEntryResponse {
	out := &pb.GetCheckpointEntryResponse{
		AlreadyRevealed:    r.AlreadyRevealed,
		NoEntriesRemaining: r.NoEntriesRemaining,
	}
	if r.Entry != nil {
		out.Entry = toEntry(r.Entry)
	}
	if r.Reveal != nil {
		out.RevealDate = r.Reveal.RevealDate.String()
	}
	for _, m := range r.Media {
		out.Media = append(out.Media, &pb.MediaLink{MediaId: m.MediaID, Kind: string(m.Kind), Url: m.URL})
	}
	return out
}

func toHistory(items []models.CheckpointHistoryItem) []*pb.HistoryItem {
	out := make([]*pb.HistoryItem, 0, len(items))
	for _, it := range items {
		h := &pb.HistoryItem{
			Id:          it.ID,
			EntryId:     it.EntryID,
			EntryTitle:  it.EntryTitle,
			EntryDate:   it.EntryDate.String(),
			AuthorId:    it.AuthorID,
			ConfigLabel: it.ConfigLabel,
			RevealDate:  it.RevealDate.String(),
			RevealedAt:  timestamp(it.RevealedAt),
		}
		if it.ConfigID != nil {
			h.ConfigId = *it.ConfigID
		}
		out = append(out, h)
	}
	return out
}
