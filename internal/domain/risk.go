package domain

// RiskLevel - порядковая классификация риска для пары зона/болезнь.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// ClassifyGrowth переводит темп роста тестов в уровень риска.
// Пороги строгие (>), не менять на >= - это сломает граничное поведение.
func ClassifyGrowth(growthRate float64) RiskLevel {
	switch {
	case growthRate > 1.5: // +150%
		return RiskCritical
	case growthRate > 0.8: // +80%
		return RiskHigh
	case growthRate > 0.4: // +40%
		return RiskMedium
	default:
		return RiskLow
	}
}

// Elevated сообщает, что уровень считается "повышенным" при агрегации по зоне.
func (r RiskLevel) Elevated() bool {
	return r == RiskHigh || r == RiskCritical
}
