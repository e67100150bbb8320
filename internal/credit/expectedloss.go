// Package credit implements the expected-loss arithmetic around an external
// probability-of-default classifier. The classifier itself (feature scaling,
// model fit) lives outside this repository; only its calling contract is
// defined here.
package credit

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Classifier scores a borrower's probability of default from raw features.
type Classifier interface {
	PredictProbability(features []float64) (float64, error)
}

// Loan is one exposure to score.
type Loan struct {
	Features     []float64
	Exposure     decimal.Decimal
	RecoveryRate float64
}

// ExpectedLoss is probability * exposure * (1 - recoveryRate).
// Probability and recovery rate must be in [0, 1]; exposure must be >= 0.
func ExpectedLoss(probability float64, exposure decimal.Decimal, recoveryRate float64) (decimal.Decimal, error) {
	if probability < 0 || probability > 1 {
		return decimal.Zero, fmt.Errorf("probability %v outside [0,1]", probability)
	}
	if recoveryRate < 0 || recoveryRate > 1 {
		return decimal.Zero, fmt.Errorf("recovery rate %v outside [0,1]", recoveryRate)
	}
	if exposure.IsNegative() {
		return decimal.Zero, errors.New("exposure must be >= 0")
	}
	lossGivenDefault := decimal.NewFromFloat(1 - recoveryRate)
	return exposure.Mul(decimal.NewFromFloat(probability)).Mul(lossGivenDefault), nil
}

// PortfolioExpectedLoss scores each loan with the classifier and sums the
// per-loan expected losses. Fails on the first loan that cannot be scored.
func PortfolioExpectedLoss(clf Classifier, loans []Loan) (decimal.Decimal, error) {
	if clf == nil {
		return decimal.Zero, errors.New("classifier is nil")
	}
	total := decimal.Zero
	for i, loan := range loans {
		probability, err := clf.PredictProbability(loan.Features)
		if err != nil {
			return decimal.Zero, fmt.Errorf("loan %d: %w", i, err)
		}
		loss, err := ExpectedLoss(probability, loan.Exposure, loan.RecoveryRate)
		if err != nil {
			return decimal.Zero, fmt.Errorf("loan %d: %w", i, err)
		}
		total = total.Add(loss)
	}
	return total, nil
}
