package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const dateLayout = "2006-01-02"

var (
	birthHeader    = []any{"Fecha", "Madre", "Cría", "Finca", "Sexo", "Raza", "Peso (kg)"}
	sanitaryHeader = []any{"Fecha", "Animal", "Finca", "Diagnóstico", "Tratamiento", "Síntomas", "Responsable"}
)

// ExportBirths writes births matching filter to w as an .xlsx workbook.
func (s *Service) ExportBirths(ctx context.Context, w io.Writer, filter domain.BirthFilter) error {
	filter.MotherTag = domain.NormalizeTag(filter.MotherTag)

	births, err := s.births.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("list births: %w", err)
	}

	ids := make([]int64, len(births))
	for i, b := range births {
		ids[i] = b.FarmID
	}
	names, err := s.farmNames(ctx, ids)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(births))
	for _, b := range births {
		offspring := ""
		if b.OffspringTag != nil {
			offspring = *b.OffspringTag
		}
		weight := ""
		if b.WeightKg != nil {
			weight = strconv.FormatFloat(*b.WeightKg, 'f', -1, 64)
		}
		rows = append(rows, []any{
			b.BirthDate.Format(dateLayout), b.MotherTag, offspring, names[b.FarmID],
			b.Sex.String(), b.Breed, weight,
		})
	}

	if err := writeSheet(w, "Partos", birthHeader, rows); err != nil {
		return fmt.Errorf("export births: %w", err)
	}

	s.log.InfoContext(ctx, "births exported", slog.Int("rows", len(rows)))
	return nil
}

// ExportSanitaryEvents writes sanitary events matching filter to w as an
// .xlsx workbook.
func (s *Service) ExportSanitaryEvents(ctx context.Context, w io.Writer, filter domain.SanitaryFilter) error {
	filter.Tag = domain.NormalizeTag(filter.Tag)

	events, err := s.sanitary.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("list sanitary events: %w", err)
	}

	ids := make([]int64, len(events))
	for i, e := range events {
		ids[i] = e.FarmID
	}
	names, err := s.farmNames(ctx, ids)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(events))
	for _, e := range events {
		symptoms := ""
		if e.Symptoms != nil {
			symptoms = *e.Symptoms
		}
		rows = append(rows, []any{
			e.Date.Format(dateLayout), e.AnimalTag, names[e.FarmID],
			e.Diagnosis, e.Treatment, symptoms, e.Responsible,
		})
	}

	if err := writeSheet(w, "Sanidad", sanitaryHeader, rows); err != nil {
		return fmt.Errorf("export sanitary events: %w", err)
	}

	s.log.InfoContext(ctx, "sanitary events exported", slog.Int("rows", len(rows)))
	return nil
}

// farmNames resolves farm ids to names with one query.
func (s *Service) farmNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string)
	if len(ids) == 0 {
		return names, nil
	}

	farms, err := s.farms.GetByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, fmt.Errorf("get farms: %w", err)
	}
	for _, f := range farms {
		names[f.ID] = f.Name
	}
	return names, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// writeSheet renders a single-sheet workbook with a bold header row.
func writeSheet(w io.Writer, sheet string, header []any, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return fmt.Errorf("set widths: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
