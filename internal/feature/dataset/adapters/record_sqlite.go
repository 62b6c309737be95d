package adapters

import (
	"context"

	"gorm.io/gorm"

	"dashboard_backend/internal/feature/dataset/domain/entity"
	"dashboard_backend/internal/platform/dataset"
)

type recordSQLite struct {
	db *gorm.DB
}

var _ dataset.Loader = (*recordSQLite)(nil)

// NewSQLiteLoader は指定されたDB接続からデータセットを読み込むローダーを生成します。
func NewSQLiteLoader(db *gorm.DB) *recordSQLite {
	return &recordSQLite{db: db}
}

// RecordModel is the SQLite representation of a dataset record. Column names
// follow the CSV headers, except the percent sign in the profit growth
// column, which SQL identifiers make awkward.
type RecordModel struct {
	ID                uint    `gorm:"primaryKey"`
	Company           string  `gorm:"column:empresa;size:255;not null"`
	Country           string  `gorm:"column:pais_sede;size:100;not null"`
	Sector            string  `gorm:"column:setor;size:100;not null"`
	Year              int     `gorm:"column:ano;not null"`
	Investment        float64 `gorm:"column:investimento_ia_usd_milhoes;not null"`
	ProfitGrowth      float64 `gorm:"column:crescimento_lucro;not null"`
	InnovationScore   float64 `gorm:"column:nota_inovacao;not null"`
	PrimaryUseCase    string  `gorm:"column:principais_usos_ia;size:255;not null"`
	OperationalImpact string  `gorm:"column:impacto_operacional;size:50;not null"`
}

func (RecordModel) TableName() string {
	return "records"
}

// Load は全レコードをID順（=挿入順）で読み込み、エンティティに変換します。
func (l *recordSQLite) Load(ctx context.Context) ([]entity.Record, error) {
	var rows []RecordModel
	if err := l.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Record, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Record{
			Company:           m.Company,
			Country:           m.Country,
			Sector:            m.Sector,
			Year:              m.Year,
			Investment:        m.Investment,
			ProfitGrowth:      m.ProfitGrowth,
			InnovationScore:   m.InnovationScore,
			PrimaryUseCase:    m.PrimaryUseCase,
			OperationalImpact: m.OperationalImpact,
		})
	}
	return out, nil
}
