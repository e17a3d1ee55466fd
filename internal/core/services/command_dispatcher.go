package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/SscSPs/mero_khata/internal/apperrors"
	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/dto"
	"github.com/SscSPs/mero_khata/internal/platform/task"
)

// Dispatch decodes the payload of a named command and runs the matching operation.
// Destructive commands are confirmed by the Confirm flag of the request.
func (s *khataService) Dispatch(ctx context.Context, cmd dto.CommandRequest) (*dto.CommandResponse, *task.Task, error) {
	s.LogDebug(ctx, "Dispatching command", slog.String("command", cmd.Name))
	confirmer := portssvc.Confirmed(cmd.Confirm)

	var (
		result any
		saved  *task.Task
		err    error
	)
	switch cmd.Name {
	case dto.CommandCreateCustomer:
		var req dto.CreateCustomerRequest
		if err := s.decodePayload(ctx, cmd, &req); err != nil {
			return nil, nil, err
		}
		customer, t, cerr := s.CreateCustomer(ctx, req)
		if cerr == nil {
			result = dto.ToCustomerResponse(customer)
		}
		saved, err = t, cerr

	case dto.CommandDeleteCustomer:
		var ref dto.CustomerRef
		if err := s.decodePayload(ctx, cmd, &ref); err != nil {
			return nil, nil, err
		}
		saved, err = s.DeleteCustomer(ctx, ref.CustomerID, confirmer)

	case dto.CommandAddTransaction:
		var req dto.AddTransactionCommand
		if err := s.decodePayload(ctx, cmd, &req); err != nil {
			return nil, nil, err
		}
		txn, t, terr := s.AddTransaction(ctx, req.CustomerID, req.AddTransactionRequest)
		if terr == nil {
			result = dto.ToTransactionResponse(txn)
		}
		saved, err = t, terr

	case dto.CommandEditTransaction:
		var req dto.EditTransactionCommand
		if err := s.decodePayload(ctx, cmd, &req); err != nil {
			return nil, nil, err
		}
		txn, t, terr := s.EditTransaction(ctx, req.CustomerID, req.TransactionID, req.EditTransactionRequest)
		if terr == nil {
			result = dto.ToTransactionResponse(txn)
		}
		saved, err = t, terr

	case dto.CommandDeleteTransaction:
		var ref dto.TransactionRef
		if err := s.decodePayload(ctx, cmd, &ref); err != nil {
			return nil, nil, err
		}
		saved, err = s.DeleteTransaction(ctx, ref.CustomerID, ref.TransactionID, confirmer)

	case dto.CommandAddExpense:
		var req dto.AddExpenseRequest
		if err := s.decodePayload(ctx, cmd, &req); err != nil {
			return nil, nil, err
		}
		expense, t, eerr := s.AddExpense(ctx, req)
		if eerr == nil {
			result = dto.ToExpenseResponse(expense)
		}
		saved, err = t, eerr

	case dto.CommandDeleteExpense:
		var ref dto.ExpenseRef
		if err := s.decodePayload(ctx, cmd, &ref); err != nil {
			return nil, nil, err
		}
		saved, err = s.DeleteExpense(ctx, ref.ExpenseID, confirmer)

	case dto.CommandUpdateShopName:
		var req dto.UpdateShopNameRequest
		if err := s.decodePayload(ctx, cmd, &req); err != nil {
			return nil, nil, err
		}
		saved, err = s.UpdateShopName(ctx, req)

	default:
		s.LogWarn(ctx, "Unknown command", slog.String("command", cmd.Name))
		return nil, nil, s.reject(ctx, apperrors.ErrValidation, "Unknown action")
	}

	if err != nil {
		return nil, nil, err
	}
	return &dto.CommandResponse{Name: cmd.Name, Result: result, Saved: saved != nil}, saved, nil
}

func (s *khataService) decodePayload(ctx context.Context, cmd dto.CommandRequest, v any) error {
	if len(cmd.Payload) == 0 {
		return s.reject(ctx, apperrors.ErrValidation, "Missing details")
	}
	if err := json.Unmarshal(cmd.Payload, v); err != nil {
		s.LogWarn(ctx, "Malformed command payload",
			slog.String("command", cmd.Name),
			slog.String("error", err.Error()))
		return s.reject(ctx, apperrors.ErrValidation, "Invalid details")
	}
	return nil
}
