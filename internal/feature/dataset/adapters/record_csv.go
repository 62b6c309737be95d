// Package adapters はdatasetフィーチャーのローダー実装を提供します。
package adapters

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"dashboard_backend/internal/feature/dataset/domain"
	"dashboard_backend/internal/feature/dataset/domain/entity"
	"dashboard_backend/internal/platform/dataset"
)

// csvLoader はCSVファイルからデータセットを読み込むLoader実装です。
type csvLoader struct {
	path string
}

var _ dataset.Loader = (*csvLoader)(nil)

// NewCSVLoader は指定されたパスのCSVファイルを読み込むローダーを生成します。
func NewCSVLoader(path string) *csvLoader {
	return &csvLoader{path: path}
}

// Load はCSVを全件読み込み、ファイル上の出現順を保ってエンティティに変換します。
// ヘッダーに必須列が欠けている場合、または値が解析できない場合はエラーを返します。
func (l *csvLoader) Load(ctx context.Context) ([]entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []entity.Record
	for row := 2; ; row++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row %d: %w", row, err)
		}
		record, err := parseRecord(fields, index)
		if err != nil {
			return nil, fmt.Errorf("dataset row %d: %w", row, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// columnIndex はヘッダーから必須列の位置を解決します。
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, required := range []string{
		entity.ColumnCompany,
		entity.ColumnCountry,
		entity.ColumnSector,
		entity.ColumnYear,
		entity.ColumnInvestment,
		entity.ColumnProfitGrowth,
		entity.ColumnInnovation,
		entity.ColumnUseCase,
		entity.ColumnImpact,
	} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, required)
		}
	}
	return index, nil
}

// parseRecord は1行分のフィールドをエンティティに変換します。
func parseRecord(fields []string, index map[string]int) (entity.Record, error) {
	year, err := strconv.Atoi(fields[index[entity.ColumnYear]])
	if err != nil {
		return entity.Record{}, invalidValue(entity.ColumnYear, fields[index[entity.ColumnYear]])
	}
	investment, err := parseFloatColumn(fields, index, entity.ColumnInvestment)
	if err != nil {
		return entity.Record{}, err
	}
	growth, err := parseFloatColumn(fields, index, entity.ColumnProfitGrowth)
	if err != nil {
		return entity.Record{}, err
	}
	innovation, err := parseFloatColumn(fields, index, entity.ColumnInnovation)
	if err != nil {
		return entity.Record{}, err
	}

	return entity.Record{
		Company:           fields[index[entity.ColumnCompany]],
		Country:           fields[index[entity.ColumnCountry]],
		Sector:            fields[index[entity.ColumnSector]],
		Year:              year,
		Investment:        investment,
		ProfitGrowth:      growth,
		InnovationScore:   innovation,
		PrimaryUseCase:    fields[index[entity.ColumnUseCase]],
		OperationalImpact: fields[index[entity.ColumnImpact]],
	}, nil
}

func parseFloatColumn(fields []string, index map[string]int, column string) (float64, error) {
	raw := fields[index[column]]
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalidValue(column, raw)
	}
	return v, nil
}

func invalidValue(column, raw string) error {
	return fmt.Errorf("%w: column %q: %q", domain.ErrInvalidValue, column, raw)
}
