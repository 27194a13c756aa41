package utils

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/popsorte/backend/internal/models"
	"github.com/popsorte/backend/internal/repositories"
)

// rechargeRowMarker tags the rows of the operator export that are actual
// recharges; other row types (withdrawals, bonuses) share the same file.
const rechargeRowMarker = "充值"

const defaultRechargeSource = "三方"

// brtZone is the fixed offset the operator exports timestamps in.
var brtZone = time.FixedZone("BRT", -3*60*60)

// ParseBrazilTime parses "dd/mm/yyyy HH:MM:SS" (seconds optional) as a
// Brazil-local timestamp. Returns the zero time when the value is not
// parseable; callers keep the raw string alongside.
func ParseBrazilTime(raw string) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{"02/01/2006 15:04:05", "02/01/2006 15:04", "02/01/2006"} {
		if t, err := time.ParseInLocation(layout, s, brtZone); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// NormalizeDrawDate accepts "dd/mm/yyyy" or "yyyy-mm-dd" and returns
// "yyyy-mm-dd".
func NormalizeDrawDate(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 3 {
			d, errD := strconv.Atoi(parts[0])
			m, errM := strconv.Atoi(parts[1])
			y, errY := strconv.Atoi(parts[2])
			if errD == nil && errM == nil && errY == nil {
				return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
			}
		}
	}
	return s
}

// ParseChosenNumbers splits a quoted "5, 12, 23" style cell into ints,
// dropping anything non-numeric or non-positive.
func ParseChosenNumbers(raw string) []int {
	cleaned := strings.Trim(strings.TrimSpace(raw), `"`)
	if cleaned == "" {
		return nil
	}
	var numbers []int
	for _, part := range strings.Split(cleaned, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// ParseRechargeRow converts one operator-export row into a Recharge, or
// nil when the row is not a recharge row or is too short.
//
// Export layout: [0]=gameId [1]=rechargeId [5]=time [6]=row type
// [7]=source [8]=amount.
func ParseRechargeRow(row []string) *models.Recharge {
	if len(row) < 9 {
		return nil
	}
	if strings.TrimSpace(row[6]) != rechargeRowMarker {
		return nil
	}

	amount, _ := strconv.ParseFloat(strings.TrimSpace(row[8]), 64)
	source := strings.TrimSpace(row[7])
	if source == "" {
		source = defaultRechargeSource
	}

	return &models.Recharge{
		GameID:     strings.TrimSpace(row[0]),
		RechargeID: strings.TrimSpace(row[1]),
		TimeRaw:    strings.TrimSpace(row[5]),
		Time:       ParseBrazilTime(row[5]),
		Amount:     amount,
		Status:     models.RechargeStatusValid,
		Source:     source,
	}
}

// ParseTicketRow converts one entries-export row into a Ticket, or nil
// when the row is too short or has no usable gameId/numbers.
//
// Export layout: [0]=registration [1]=platform [2]=gameId [3]=whatsapp
// [4]=numbers [5]=drawDate [6]=contest [7]=ticketNumber [8]=status.
func ParseTicketRow(row []string) *models.Ticket {
	if len(row) < 9 {
		return nil
	}

	numbers := ParseChosenNumbers(row[4])
	gameID := strings.TrimSpace(row[2])
	if gameID == "" || len(numbers) == 0 {
		return nil
	}

	platform := strings.ToUpper(strings.TrimSpace(row[1]))
	if platform == "" {
		platform = "POPN1"
	}

	status := strings.TrimSpace(row[8])
	if status == "" {
		status = models.TicketStatusGenerated
	}

	return &models.Ticket{
		GameID:           gameID,
		Platform:         platform,
		WhatsApp:         strings.TrimSpace(row[3]),
		RegistrationRaw:  strings.TrimSpace(row[0]),
		RegistrationTime: ParseBrazilTime(row[0]),
		ChosenNumbers:    numbers,
		DrawDate:         NormalizeDrawDate(row[5]),
		Contest:          strings.TrimSpace(row[6]),
		TicketNumber:     strings.TrimSpace(row[7]),
		Status:           status,
	}
}

// ParseResultRow converts one results-export row into a DrawResult, or
// nil when the row lacks a contest, a date, or exactly five numbers.
//
// Export layout: [0]=contest [1]=drawDate [2..6]=numbers.
func ParseResultRow(row []string) *models.DrawResult {
	if len(row) < 7 {
		return nil
	}
	contest := strings.TrimSpace(row[0])
	drawDate := strings.TrimSpace(row[1])
	if contest == "" || drawDate == "" {
		return nil
	}

	var numbers []int
	for _, cell := range row[2:7] {
		n, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	if len(numbers) != 5 {
		return nil
	}

	return &models.DrawResult{
		Contest:        contest,
		DrawDate:       NormalizeDrawDate(drawDate),
		WinningNumbers: numbers,
	}
}

// CSVImporter loads operator export files into the repositories
type CSVImporter struct {
	rechargeRepo repositories.RechargeRepository
	ticketRepo   repositories.TicketRepository
	resultRepo   repositories.ResultRepository
}

// NewCSVImporter creates a new CSVImporter
func NewCSVImporter(
	rechargeRepo repositories.RechargeRepository,
	ticketRepo repositories.TicketRepository,
	resultRepo repositories.ResultRepository,
) *CSVImporter {
	return &CSVImporter{
		rechargeRepo: rechargeRepo,
		ticketRepo:   ticketRepo,
		resultRepo:   resultRepo,
	}
}

// ImportSummary reports the outcome of one file import
type ImportSummary struct {
	TotalRows int      `json:"totalRows"`
	Imported  int      `json:"imported"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors,omitempty"`
}

// ImportRecharges imports the operator recharge export
func (i *CSVImporter) ImportRecharges(ctx context.Context, filePath string) (*ImportSummary, error) {
	summary := &ImportSummary{}
	var batch []*models.Recharge

	err := i.eachRow(filePath, summary, func(row []string) {
		recharge := ParseRechargeRow(row)
		if recharge == nil {
			summary.Skipped++
			return
		}
		batch = append(batch, recharge)
		summary.Imported++
	})
	if err != nil {
		return nil, err
	}

	if len(batch) > 0 {
		if err := i.rechargeRepo.CreateMany(ctx, batch); err != nil {
			return nil, fmt.Errorf("failed to store recharges: %w", err)
		}
	}
	return summary, nil
}

// ImportTickets imports the ticket entries export
func (i *CSVImporter) ImportTickets(ctx context.Context, filePath string) (*ImportSummary, error) {
	summary := &ImportSummary{}
	var batch []*models.Ticket

	err := i.eachRow(filePath, summary, func(row []string) {
		ticket := ParseTicketRow(row)
		if ticket == nil {
			summary.Skipped++
			return
		}
		batch = append(batch, ticket)
		summary.Imported++
	})
	if err != nil {
		return nil, err
	}

	if len(batch) > 0 {
		if err := i.ticketRepo.CreateMany(ctx, batch); err != nil {
			return nil, fmt.Errorf("failed to store tickets: %w", err)
		}
	}
	return summary, nil
}

// ImportResults imports the winning-numbers export
func (i *CSVImporter) ImportResults(ctx context.Context, filePath string) (*ImportSummary, error) {
	summary := &ImportSummary{}

	var parsed []*models.DrawResult
	err := i.eachRow(filePath, summary, func(row []string) {
		result := ParseResultRow(row)
		if result == nil {
			summary.Skipped++
			return
		}
		parsed = append(parsed, result)
		summary.Imported++
	})
	if err != nil {
		return nil, err
	}

	for _, result := range parsed {
		if err := i.resultRepo.Upsert(ctx, result); err != nil {
			return nil, fmt.Errorf("failed to store result for contest %s: %w", result.Contest, err)
		}
	}
	return summary, nil
}

// eachRow opens a CSV file, skips the header, and calls fn per data row
func (i *CSVImporter) eachRow(filePath string, summary *ImportSummary, fn func(row []string)) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("error reading row: %v", err))
			continue
		}
		summary.TotalRows++
		fn(row)
	}
	return nil
}
