package google

import (
	"context"
	"fmt"
	"strings"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const readColumns = "A:ZZ"

// SheetsClient is the record store backed by a Google spreadsheet. The first row of
// every sheet is the header row.
type SheetsClient struct {
	svc *sheets.Service
}

var _ interfaces.IRecordStore = (*SheetsClient)(nil)

func NewSheetsClient(ctx context.Context, opts ...option.ClientOption) (*SheetsClient, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &SheetsClient{svc: svc}, nil
}

func (c *SheetsClient) ReadRows(ctx context.Context, sourceID, collection string) ([]entities.Record, error) {
	values, err := c.readValues(ctx, sourceID, collection)
	if err != nil {
		return nil, err
	}
	return toRecords(values), nil
}

func (c *SheetsClient) AppendRows(ctx context.Context, sourceID, collection string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	vr := &sheets.ValueRange{Values: make([][]interface{}, 0, len(rows))}
	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v
		}
		vr.Values = append(vr.Values, cells)
	}
	_, err := c.svc.Spreadsheets.Values.Append(sourceID, quoteSheet(collection), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append %s: %w", collection, err)
	}
	return nil
}

// UpdateCell matches key against keyColumn after id normalization, so "12" finds a cell read back as "12.0".
func (c *SheetsClient) UpdateCell(ctx context.Context, sourceID, collection, keyColumn, key, column, value string) error {
	values, err := c.readValues(ctx, sourceID, collection)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: %s", interfaces.ErrColumnNotFound, column)
	}
	header := stringRow(values[0])
	keyIdx := headerIndex(header, keyColumn)
	if keyIdx < 0 {
		return fmt.Errorf("%w: %s", interfaces.ErrColumnNotFound, keyColumn)
	}
	colIdx := headerIndex(header, column)
	if colIdx < 0 {
		return fmt.Errorf("%w: %s", interfaces.ErrColumnNotFound, column)
	}

	want := entities.NormalizeID(key)
	for i := 1; i < len(values); i++ {
		row := stringRow(values[i])
		if keyIdx >= len(row) || entities.NormalizeID(row[keyIdx]) != want {
			continue
		}
		cell := fmt.Sprintf("%s!%s%d", quoteSheet(collection), columnLetter(colIdx), i+1)
		_, err := c.svc.Spreadsheets.Values.Update(sourceID, cell, &sheets.ValueRange{
			Values: [][]interface{}{{value}},
		}).ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("update %s: %w", cell, err)
		}
		log.Printf("[records][sheets] cell updated range=%s", cell)
		return nil
	}
	return fmt.Errorf("%w: %s=%s", interfaces.ErrRecordNotFound, keyColumn, key)
}

func (c *SheetsClient) readValues(ctx context.Context, sourceID, collection string) ([][]interface{}, error) {
	if sourceID == "" || collection == "" {
		return nil, fmt.Errorf("sheet id and name are required")
	}
	resp, err := c.svc.Spreadsheets.Values.Get(sourceID, quoteSheet(collection)+"!"+readColumns).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	return resp.Values, nil
}

// toRecords keys data rows by header. Short rows are padded, blank rows and
// unnamed columns are dropped.
func toRecords(values [][]interface{}) []entities.Record {
	if len(values) < 2 {
		return []entities.Record{}
	}
	header := stringRow(values[0])
	out := make([]entities.Record, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := stringRow(raw)
		if isBlank(row) {
			continue
		}
		rec := make(entities.Record, len(header))
		for i, name := range header {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}

func stringRow(raw []interface{}) []string {
	out := make([]string, len(raw))
	for i, v := range raw {
		if v == nil {
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func headerIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// columnLetter converts a zero-based column index to A1 notation (0 -> A, 26 -> AA).
func columnLetter(idx int) string {
	var b []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}
