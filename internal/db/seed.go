package db

import (
	"context"
	"fmt"
	"time"
)

// seedVaccinations is the national immunization schedule served as reference
// data. Descriptions are bilingual; the Hindi variant is shown for "hi"
// responses.
var seedVaccinations = []VaccinationRecord{
	{VaccineName: "BCG", AgeGroup: "Birth", DescriptionEN: "Protection against tuberculosis", DescriptionHI: "तपेदिक से सुरक्षा", Schedule: "At birth"},
	{VaccineName: "Hepatitis B", AgeGroup: "Birth, 6 weeks, 10 weeks, 14 weeks", DescriptionEN: "Protection against Hepatitis B", DescriptionHI: "हेपेटाइटिस बी से सुरक्षा", Schedule: "Birth, 6, 10, 14 weeks"},
	{VaccineName: "DPT", AgeGroup: "6 weeks, 10 weeks, 14 weeks", DescriptionEN: "Protection against Diphtheria, Pertussis, Tetanus", DescriptionHI: "डिप्थीरिया, काली खांसी, टिटनेस से सुरक्षा", Schedule: "6, 10, 14 weeks"},
	{VaccineName: "Polio", AgeGroup: "Birth, 6 weeks, 10 weeks, 14 weeks", DescriptionEN: "Protection against Polio", DescriptionHI: "पोलियो से सुरक्षा", Schedule: "Birth, 6, 10, 14 weeks"},
	{VaccineName: "Measles", AgeGroup: "9-12 months", DescriptionEN: "Protection against Measles", DescriptionHI: "खसरा से सुरक्षा", Schedule: "9-12 months"},
	{VaccineName: "MMR", AgeGroup: "15-18 months", DescriptionEN: "Protection against Measles, Mumps, Rubella", DescriptionHI: "खसरा, कण्ठमाला, रूबेला से सुरक्षा", Schedule: "15-18 months"},
}

func seedAlerts(now time.Time) []OutbreakAlert {
	return []OutbreakAlert{
		{
			Disease:       "Dengue",
			Location:      "Delhi",
			AlertLevel:    "Medium",
			DescriptionEN: "Increased dengue cases reported. Use mosquito nets and avoid water stagnation.",
			DescriptionHI: "डेंगू के मामले बढ़े हैं। मच्छरदानी का उपयोग करें और पानी जमने न दें।",
			CreatedAt:     now,
		},
		{
			Disease:       "Malaria",
			Location:      "Mumbai",
			AlertLevel:    "High",
			DescriptionEN: "High malaria cases in monsoon season. Take preventive measures.",
			DescriptionHI: "मानसून में मलेरिया के अधिक मामले। बचाव के उपाय करें।",
			CreatedAt:     now,
		},
	}
}

// Seed loads the reference datasets. Seeding is idempotent: each row is
// upserted by its unique key, so re-running leaves exactly one record per key.
func Seed(ctx context.Context, db *DB) error {
	for _, rec := range seedVaccinations {
		if err := db.UpsertVaccination(ctx, rec); err != nil {
			return fmt.Errorf("failed to seed vaccinations: %w", err)
		}
	}

	for _, alert := range seedAlerts(time.Now()) {
		if err := db.UpsertAlert(ctx, alert); err != nil {
			return fmt.Errorf("failed to seed alerts: %w", err)
		}
	}

	return nil
}
