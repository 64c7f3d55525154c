package services

import (
	"fmt"

	"github.com/yurayurastudio/studio_backend/models"
)

// Distribution field names as they appear in requests and validation errors
const (
	FieldSalesPercentage    = "salesPercentage"
	FieldDirectorPercentage = "directorPercentage"
	FieldCreatorPercentage  = "creatorPercentage"
)

// DistributionTotal is the sum of the split including the fixed operations cut
func DistributionTotal(sales, director, creator int) int {
	return models.OperationPercentage + sales + director + creator
}

// ValidateDistribution checks a proposed split. Each field must lie in
// [0, 90]; range failures are reported before the sum is checked. The sum
// with the operations cut must be exactly 100, and a mismatch is reported on
// the creator field, which balances the split.
func ValidateDistribution(sales, director, creator int) error {
	total := DistributionTotal(sales, director, creator)

	fields := make(map[string]string)
	for name, value := range map[string]int{
		FieldSalesPercentage:    sales,
		FieldDirectorPercentage: director,
		FieldCreatorPercentage:  creator,
	} {
		if value < 0 || value > models.MaxRolePercentage {
			fields[name] = fmt.Sprintf("must be between 0 and %d", models.MaxRolePercentage)
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields, Total: total}
	}

	if total != 100 {
		return &ValidationError{
			Fields: map[string]string{
				FieldCreatorPercentage: fmt.Sprintf("total must be 100%% (currently %d%%)", total),
			},
			Total: total,
		}
	}
	return nil
}
