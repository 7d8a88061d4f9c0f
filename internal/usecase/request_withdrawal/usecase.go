package request_withdrawal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

// UseCase use case для заявки на вывод средств
type UseCase struct {
	ledger         Ledger
	withdrawalRepo WithdrawalRepository
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledger Ledger,
	withdrawalRepo WithdrawalRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledger:         ledger,
		withdrawalRepo: withdrawalRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute списывает сумму из available и создает заявку в статусе pending.
// Списание и заявка фиксируются одной транзакцией.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestWithdrawal: owner=%s, amount=%s", req.OwnerID, req.Amount)

	// 1. Валидация входных данных
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	bankName := strings.TrimSpace(req.BankName)
	accountNumber := strings.TrimSpace(req.AccountNumber)
	if bankName == "" || accountNumber == "" {
		return nil, ErrBankDetailsRequired
	}

	resp := &Response{}

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Списываем available; ErrInsufficientFunds возвращается как есть
		wallet, movement, err := uc.ledger.Withdraw(txCtx, req.OwnerID, req.Amount)
		if err != nil {
			return err
		}

		// 2.2. Создаем заявку
		withdrawal, err := uc.withdrawalRepo.Create(txCtx, &domain.WithdrawalRequest{
			OwnerID:       req.OwnerID,
			WalletID:      wallet.ID,
			Amount:        req.Amount,
			BankName:      bankName,
			AccountNumber: accountNumber,
			Status:        domain.WithdrawalPending,
		})
		if err != nil {
			uc.logger.Error("RequestWithdrawal: failed to create request for owner=%s: %v", req.OwnerID, err)
			return fmt.Errorf("%w: create withdrawal: %w", ErrInternal, err)
		}

		resp.Withdrawal = withdrawal
		resp.Wallet = wallet
		resp.Movement = movement
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("RequestWithdrawal: concurrent update of owner=%s wallet: %v", req.OwnerID, err)
			return nil, ErrConcurrentUpdate
		}
		return nil, err
	}

	uc.logger.Info("RequestWithdrawal: request=%s created, owner=%s available=%s",
		resp.Withdrawal.ID, req.OwnerID, resp.Wallet.Available)

	return resp, nil
}
