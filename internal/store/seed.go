package store

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"shahabsang/internal/model"
)

// SampleMeteorites is the fixed catalog inserted into an empty store.
var SampleMeteorites = []model.Meteorite{
	{
		Name:        "شهاب‌سنگ کندریت معمولی",
		Type:        "کندریت",
		Location:    "صحرای آفریقا",
		Weight:      floatPtr(150.0),
		Price:       floatPtr(5200000.0),
		Description: strPtr("شهاب‌سنگ سنگی با دانه‌های کندرول، قدیمی‌ترین نوع شهاب‌سنگ با قدمت ۴.۵ میلیارد سال"),
		ImageURL:    strPtr("/images/meteorite1.jpg"),
	},
	{
		Name:        "شهاب‌سنگ آهنی",
		Type:        "آهنی",
		Location:    "قطب جنوب",
		Weight:      floatPtr(280.0),
		Price:       floatPtr(8750000.0),
		Description: strPtr("شهاب‌سنگ فلزی با درصد بالای آهن و نیکل، دارای الگوی ویدمن اشتاتن"),
		ImageURL:    strPtr("/images/meteorite2.jpg"),
	},
	{
		Name:        "شهاب‌سنگ مریخی",
		Type:        "مریخی",
		Location:    "عمان",
		Weight:      floatPtr(85.0),
		Price:       floatPtr(25000000.0),
		Description: strPtr("شهاب‌سنگ نادر با منشأ سیاره مریخ، حاوی مواد معدنی منحصر به فرد"),
		ImageURL:    strPtr("/images/meteorite3.jpg"),
	},
	{
		Name:        "شهاب‌سنگ قمری",
		Type:        "قمری",
		Location:    "لیبی",
		Weight:      floatPtr(120.0),
		Price:       floatPtr(32500000.0),
		Description: strPtr("شهاب‌سنگ بسیار نادر از کره ماه، مشابه نمونه‌های مأموریت آپولو"),
		ImageURL:    strPtr("/images/meteorite4.jpg"),
	},
}

// SeedIfEmpty inserts the sample catalog when the store holds no meteorites.
// Inserts are best-effort: a failed row is logged and the rest proceed.
// Subsequent startups against a non-empty store are a no-op.
func SeedIfEmpty(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	count, err := CountMeteorites(ctx, db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeded := 0
	for _, m := range SampleMeteorites {
		if _, err := CreateMeteorite(ctx, db, m); err != nil {
			logger.Error("seeding sample meteorite", zap.String("name", m.Name), zap.Error(err))
			continue
		}
		seeded++
	}
	logger.Info("seeded sample meteorites", zap.Int("count", seeded))
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }
