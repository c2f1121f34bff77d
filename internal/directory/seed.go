package directory

import "github.com/UnknownOlympus/hestia/internal/models"

// DefaultSeed returns the ten records the directory starts with when no seed is configured.
// Every call returns new identifiers.
func DefaultSeed() []models.Employee {
	return []models.Employee{
		models.NewEmployee("أحمد محمد", "ahmed@company.com", "0501111111", "تطوير البرمجيات"),
		models.NewEmployee("سارة علي", "sara@company.com", "0502222222", "التصميم"),
		models.NewEmployee("خالد حسن", "khaled@company.com", "0503333333", "المبيعات"),
		models.NewEmployee("فاطمة عمر", "fatima@company.com", "0504444444", "الدعم الفني"),
		models.NewEmployee("محمد سعيد", "mohammed@company.com", "0505555555", "التسويق"),
		models.NewEmployee("نورة عبدالله", "noura@company.com", "0506666666", "الموارد البشرية"),
		models.NewEmployee("يوسف أحمد", "yousef@company.com", "0507777777", "المالية"),
		models.NewEmployee("لينا خالد", "lina@company.com", "0508888888", "الجودة"),
		models.NewEmployee("عمر محمد", "omar@company.com", "0509999999", "التطوير"),
		models.NewEmployee("هدى سليمان", "huda@company.com", "0500000000", "الإدارة"),
	}
}
