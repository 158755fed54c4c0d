package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/mmtc/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newContractPolicy,
	NewAuthUseCase,
	NewEmployerUseCase,
	NewHelperUseCase,
	NewContractUseCase,
)

func newContractPolicy(cfg *config.Config) ContractPolicy {
	return ContractPolicy{Months: cfg.ContractMonths, MonthlyAmount: cfg.ContractMonthlyAmount}
}
