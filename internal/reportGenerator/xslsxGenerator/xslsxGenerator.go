package xslsxGenerator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KotFed0t/invest_contracts/internal/model"
	"github.com/KotFed0t/invest_contracts/utils"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	findingsSheet = "Findings"
)

var findingColumns = []string{"contract", "source", "status", "result", "entity", "field", "key", "path", "token", "reason", "checked at"}

type XSLSXGenerator struct{}

func New() *XSLSXGenerator {
	return &XSLSXGenerator{}
}

func (g *XSLSXGenerator) Generate(ctx context.Context, summary model.DriftSummary) (fileBytes []byte, fileExtension string, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "XSLSXGenerator.Generate"

	if len(summary.Findings) == 0 {
		return nil, "", errors.New("empty findings")
	}

	slog.Debug("Generate start", slog.String("rqID", rqID), slog.String("op", op))

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("got error while closing file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}()

	if err := g.fillSummary(f, summary); err != nil {
		return nil, "", err
	}

	if err := g.fillFindings(f, summary.Findings); err != nil {
		slog.Error("got error while filling findings", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, "", err
	}

	// Удаляем лист по умолчанию "Sheet1"
	if err := f.DeleteSheet("Sheet1"); err != nil {
		slog.Error("got error while deleting Sheet1", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		slog.Error("got error while Saving file to bytes buffer", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, "", err
	}

	slog.Debug("Generate completed", slog.String("rqID", rqID), slog.String("op", op))

	return buf.Bytes(), ".xlsx", nil
}

func headerStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{color},
		},
	})
}

func (g *XSLSXGenerator) fillSummary(f *excelize.File, summary model.DriftSummary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	styleID, err := headerStyle(f, "#cfe2f3") // светло-голубой
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A3", styleID); err != nil {
		return fmt.Errorf("ошибка применения стиля: %w", err)
	}

	_ = f.SetCellStr(summarySheet, "A1", "checked")
	_ = f.SetCellInt(summarySheet, "B1", summary.Total)
	_ = f.SetCellStr(summarySheet, "A2", "drifted")
	_ = f.SetCellInt(summarySheet, "B2", summary.Failed)
	_ = f.SetCellStr(summarySheet, "A3", "matched")
	_ = f.SetCellInt(summarySheet, "B3", summary.Total-summary.Failed)

	return nil
}

func (g *XSLSXGenerator) fillFindings(f *excelize.File, findings []model.Finding) error {
	if _, err := f.NewSheet(findingsSheet); err != nil {
		return err
	}

	for i, name := range findingColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		_ = f.SetCellStr(findingsSheet, cell, name)
	}

	styleID, err := headerStyle(f, "#d9ead3") // светло-зеленый
	if err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(findingColumns), 1)
	if err := f.SetCellStyle(findingsSheet, "A1", lastHeader, styleID); err != nil {
		return fmt.Errorf("ошибка применения стиля: %w", err)
	}

	driftStyleID, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"#f4cccc"}, // светло-розовый
		},
	})
	if err != nil {
		return err
	}

	for i, finding := range findings {
		row := i + 2

		result := "ok"
		if !finding.OK() {
			result = "drift"
		}

		values := []string{
			fmt.Sprintf("%s@v%d", finding.Endpoint, finding.Version),
			finding.Source,
			finding.Status,
			result,
			finding.Entity,
			finding.Field,
			finding.Key,
			finding.Path,
			finding.Token,
			finding.Reason,
		}
		for j, v := range values {
			_ = f.SetCellStr(findingsSheet, fmt.Sprintf("%c%d", 'A'+j, row), v)
		}
		_ = f.SetCellValue(findingsSheet, fmt.Sprintf("K%d", row), finding.CheckedAt)

		if !finding.OK() {
			if err := f.SetCellStyle(findingsSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("K%d", row), driftStyleID); err != nil {
				return fmt.Errorf("ошибка применения стиля: %w", err)
			}
		}
	}

	return nil
}
