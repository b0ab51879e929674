// Package bankaccount exposes the BankAccount REST resource.
package bankaccount

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	bankaccountsvc "github.com/mycompany/bankapp/pkg/service/bankaccount"
	"github.com/mycompany/bankapp/webapi/common"
)

// Routes registers the BankAccount resource under /api.
//
// Routes:
//   - POST   /api/bankAccounts                 : Create a new bank account.
//   - PUT    /api/bankAccounts                 : Update a bank account (creates when no ID is given).
//   - GET    /api/bankAccounts                 : List all bank accounts.
//   - GET    /api/bankAccounts/:id             : Get one bank account.
//   - DELETE /api/bankAccounts/:id             : Delete a bank account from both stores.
//   - GET    /api/_search/bankAccounts/:query  : Free-text search over the index.
func Routes(app *fiber.App, svc *bankaccountsvc.Service) {
	api := app.Group("/api")
	api.Post("/bankAccounts", CreateBankAccount(svc))
	api.Put("/bankAccounts", UpdateBankAccount(svc))
	api.Get("/bankAccounts", GetAllBankAccounts(svc))
	api.Get("/bankAccounts/:id", GetBankAccount(svc))
	api.Delete("/bankAccounts/:id", DeleteBankAccount(svc))
	api.Get("/_search/bankAccounts/:query", SearchBankAccounts(svc))
}

// alertHeaders sets the entity alert headers carried by successful mutations.
func alertHeaders(c *fiber.Ctx, message, param string) {
	c.Set("X-bankApp-alert", message)
	c.Set("X-bankApp-params", param)
}

// createAndRespond runs the create flow and writes the 201 response. Shared
// by the POST handler and the PUT handler's no-ID fallback.
func createAndRespond(c *fiber.Ctx, svc *bankaccountsvc.Service, input *BankAccountRequest) error {
	created, err := svc.Create(c.UserContext(), input.toCreateDTO())
	if err != nil {
		slog.Error("failed to create bank account", "error", err)
		return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err),
			"Failed to create bankAccount", err.Error())
	}
	c.Location("/api/bankAccounts/" + created.ID.String())
	alertHeaders(c,
		fmt.Sprintf("A new bankAccount is created with identifier %s", created.ID),
		created.ID.String())
	return c.Status(fiber.StatusCreated).JSON(created)
}

// CreateBankAccount returns the handler for POST /api/bankAccounts.
// A body that already carries an ID is rejected with 400 and a Failure header.
// @Summary Create a new bank account
// @Description Creates a new bank account and indexes it for search. The body must not contain an id.
// @Tags bankAccounts
// @Accept json
// @Produce json
// @Param request body BankAccountRequest true "Bank account to create"
// @Success 201 {object} dto.BankAccountRead "Bank account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request or id already set"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/bankAccounts [post]
func CreateBankAccount(svc *bankaccountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[BankAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		if input.ID != uuid.Nil {
			c.Set("Failure", "A new bankAccount cannot already have an ID")
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"A new bankAccount cannot already have an ID", nil)
		}
		return createAndRespond(c, svc, input)
	}
}

// UpdateBankAccount returns the handler for PUT /api/bankAccounts.
// A body without an ID falls back to creation.
// @Summary Update a bank account
// @Description Updates an existing bank account and re-indexes it. Falls back to creation when the body has no id.
// @Tags bankAccounts
// @Accept json
// @Produce json
// @Param request body BankAccountRequest true "Bank account to update"
// @Success 200 {object} dto.BankAccountRead "Bank account updated"
// @Success 201 {object} dto.BankAccountRead "Bank account created (no id in body)"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Bank account not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/bankAccounts [put]
func UpdateBankAccount(svc *bankaccountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[BankAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		if input.ID == uuid.Nil {
			return createAndRespond(c, svc, input)
		}
		updated, err := svc.Update(c.UserContext(), input.ID, input.toUpdateDTO())
		if err != nil {
			slog.Error("failed to update bank account", "id", input.ID, "error", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err),
				"Failed to update bankAccount", err.Error())
		}
		alertHeaders(c,
			fmt.Sprintf("A bankAccount is updated with identifier %s", updated.ID),
			updated.ID.String())
		return c.JSON(updated)
	}
}

// GetAllBankAccounts returns the handler for GET /api/bankAccounts.
// @Summary List all bank accounts
// @Tags bankAccounts
// @Produce json
// @Success 200 {array} dto.BankAccountRead
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/bankAccounts [get]
func GetAllBankAccounts(svc *bankaccountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := svc.List(c.UserContext())
		if err != nil {
			slog.Error("failed to list bank accounts", "error", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err),
				"Failed to list bankAccounts", err.Error())
		}
		return c.JSON(accounts)
	}
}

// GetBankAccount returns the handler for GET /api/bankAccounts/:id.
// @Summary Get a bank account
// @Tags bankAccounts
// @Produce json
// @Param id path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountRead
// @Failure 400 {object} common.ProblemDetails "Invalid ID"
// @Failure 404 {object} common.ProblemDetails "Bank account not found"
// @Router /api/bankAccounts/{id} [get]
func GetBankAccount(svc *bankaccountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid bankAccount ID", "ID must be a valid UUID")
		}
		account, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err),
				"Failed to get bankAccount", err.Error())
		}
		return c.JSON(account)
	}
}

// DeleteBankAccount returns the handler for DELETE /api/bankAccounts/:id.
// Removes the bank account from the primary store and the search index.
// @Summary Delete a bank account
// @Tags bankAccounts
// @Produce json
// @Param id path string true "Bank account ID"
// @Success 200 "Bank account deleted"
// @Failure 400 {object} common.ProblemDetails "Invalid ID"
// @Failure 404 {object} common.ProblemDetails "Bank account not found"
// @Router /api/bankAccounts/{id} [delete]
func DeleteBankAccount(svc *bankaccountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid bankAccount ID", "ID must be a valid UUID")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			slog.Error("failed to delete bank account", "id", id, "error", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err),
				"Failed to delete bankAccount", err.Error())
		}
		alertHeaders(c,
			fmt.Sprintf("A bankAccount is deleted with identifier %s", id),
			id.String())
		return c.SendStatus(fiber.StatusOK)
	}
}

// SearchBankAccounts returns the handler for GET /api/_search/bankAccounts/:query.
// @Summary Search bank accounts
// @Description Runs a free-text query against the search index and returns all matches.
// @Tags bankAccounts
// @Produce json
// @Param query path string true "Free-text query"
// @Success 200 {array} dto.BankAccountRead
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/_search/bankAccounts/{query} [get]
func SearchBankAccounts(svc *bankaccountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		results, err := svc.Search(c.UserContext(), c.Params("query"))
		if err != nil {
			slog.Error("failed to search bank accounts", "error", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err),
				"Failed to search bankAccounts", err.Error())
		}
		return c.JSON(results)
	}
}
