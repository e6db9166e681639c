package mongo

import (
	"context"
	"time"

	"github.com/fintrack/backend/internal/database"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection             = "users"
	expensesCollection          = "expenses"
	budgetsCollection           = "budgets"
	recurringExpensesCollection = "recurring_expenses"
)

// Store implements database.Store on MongoDB collections.
type Store struct {
	client *Client
	db     *mongo.Database

	users             *mongo.Collection
	expenses          *mongo.Collection
	budgets           *mongo.Collection
	recurringExpenses *mongo.Collection

	now func() time.Time
}

var _ database.Store = (*Store)(nil)

// NewStore returns a Store on the database.
func NewStore(db *mongo.Database) *Store {
	return &Store{
		db:                db,
		users:             db.Collection(usersCollection),
		expenses:          db.Collection(expensesCollection),
		budgets:           db.Collection(budgetsCollection),
		recurringExpenses: db.Collection(recurringExpensesCollection),
		now:               time.Now,
	}
}

// Open connects to MongoDB and makes sure that all indexes exist.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	s := NewStore(client.Database())
	s.client = client

	err = s.EnsureIndexes(ctx)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return s, nil
}

// EnsureIndexes creates the indexes for all collections.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[*mongo.Collection][]mongo.IndexModel{
		s.users: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		s.expenses: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "category", Value: 1}}},
		},
		s.budgets: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "month", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		s.recurringExpenses: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "next_due_date", Value: 1}}},
		},
	}

	for collection, idx := range indexes {
		_, err := collection.Indexes().CreateMany(ctx, idx)
		if err != nil {
			return errors.Wrapf(err, "failed to create indexes for %s", collection.Name())
		}
	}

	return nil
}

// Ping verifies that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Close disconnects the client if the store owns one.
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.client.Disconnect(ctx)
}

// general logs an error the user cannot act upon and replaces it with models.ErrGeneral.
func general(err error, msg string) error {
	log.Error().Err(err).Msg(msg)
	return errors.WithMessage(models.ErrGeneral, msg)
}

// findOne decodes a single document or returns a not found error for the resource.
func findOne(ctx context.Context, c *mongo.Collection, filter bson.M, target any, resource string) error {
	err := c.FindOne(ctx, filter).Decode(target)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NotFound(resource)
	}

	if err != nil {
		return general(err, "failed to get "+resource)
	}

	return nil
}

// decoded replaces errors from converting a stored document with models.ErrGeneral.
func decoded[M any](m M, err error) (M, error) {
	if err != nil {
		return m, general(err, "failed to decode stored document")
	}

	return m, nil
}

// findAll decodes all documents matching the filter into models.
func findAll[D interface{ model() (M, error) }, M any](ctx context.Context, c *mongo.Collection, filter bson.M, opts *options.FindOptions, resource string) ([]M, error) {
	cursor, err := c.Find(ctx, filter, opts)
	if err != nil {
		return nil, general(err, "failed to list "+resource)
	}
	defer cursor.Close(ctx)

	var documents []D
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, general(err, "failed to decode "+resource)
	}

	result := make([]M, 0, len(documents))
	for _, d := range documents {
		m, err := d.model()
		if err != nil {
			return nil, general(err, "failed to decode "+resource)
		}
		result = append(result, m)
	}

	return result, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	user.Normalize()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Touch(s.now())

	_, err := s.users.InsertOne(ctx, newUserDocument(*user))
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrEmailInUse
	}

	if err != nil {
		return general(err, "failed to create user")
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	var d userDocument
	if err := findOne(ctx, s.users, bson.M{"_id": id.String()}, &d, "user"); err != nil {
		return models.User{}, err
	}

	return decoded(d.model())
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var d userDocument
	if err := findOne(ctx, s.users, bson.M{"email": models.NormalizeEmail(email)}, &d, "user"); err != nil {
		return models.User{}, err
	}

	return decoded(d.model())
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	return findAll[userDocument, models.User](ctx, s.users, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}), "users")
}

func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	user.Normalize()
	user.Touch(s.now())

	result, err := s.users.UpdateOne(ctx, bson.M{"_id": user.ID.String()}, bson.M{
		"$set": bson.M{
			"email":         user.Email,
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"password_hash": user.PasswordHash,
			"updated_at":    user.UpdatedAt,
		},
	})
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrEmailInUse
	}

	if err != nil {
		return general(err, "failed to update user")
	}

	if result.MatchedCount == 0 {
		return models.NotFound("user")
	}

	return nil
}

// DeleteUser deletes the user with everything the user owns.
//
// The owned records go first so that a failure never leaves records behind
// that belong to no user.
func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	for _, c := range []*mongo.Collection{s.expenses, s.budgets, s.recurringExpenses} {
		_, err := c.DeleteMany(ctx, bson.M{"user_id": id.String()})
		if err != nil {
			return general(err, "failed to delete "+c.Name()+" of user")
		}
	}

	result, err := s.users.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return general(err, "failed to delete user")
	}

	if result.DeletedCount == 0 {
		return models.NotFound("user")
	}

	return nil
}

func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}

	err := s.insertExpense(ctx, expense)
	if err != nil {
		return general(err, "failed to create expense")
	}

	return nil
}

// insertExpense inserts the expense, returning driver errors as they are.
func (s *Store) insertExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	expense.Touch(s.now())

	d, err := newExpenseDocument(*expense)
	if err != nil {
		return err
	}

	_, err = s.expenses.InsertOne(ctx, d)
	return err
}

func (s *Store) GetExpense(ctx context.Context, userID, id uuid.UUID) (models.Expense, error) {
	var d expenseDocument
	if err := findOne(ctx, s.expenses, bson.M{"_id": id.String(), "user_id": userID.String()}, &d, "expense"); err != nil {
		return models.Expense{}, err
	}

	return decoded(d.model())
}

// expenseQuery translates the filter to a query document.
func expenseQuery(userID uuid.UUID, filter database.ExpenseFilter) bson.M {
	query := bson.M{"user_id": userID.String()}

	if filter.Category != "" {
		query["category"] = string(filter.Category)
	}

	date := bson.M{}
	if !filter.From.IsZero() {
		date["$gte"] = filter.From.String()
	}
	if !filter.Until.IsZero() {
		date["$lte"] = filter.Until.String()
	}
	if len(date) > 0 {
		query["date"] = date
	}

	return query
}

func (s *Store) ListExpenses(ctx context.Context, userID uuid.UUID, filter database.ExpenseFilter) ([]models.Expense, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}})
	return findAll[expenseDocument, models.Expense](ctx, s.expenses, expenseQuery(userID, filter), opts, "expenses")
}

func (s *Store) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}
	expense.Touch(s.now())

	amount, err := toDecimal128(expense.Amount)
	if err != nil {
		return err
	}

	result, err := s.expenses.UpdateOne(ctx, bson.M{"_id": expense.ID.String(), "user_id": expense.UserID.String()}, bson.M{
		"$set": bson.M{
			"amount":      amount,
			"category":    string(expense.Category),
			"description": expense.Description,
			"date":        expense.Date,
			"updated_at":  expense.UpdatedAt,
		},
	})
	if err != nil {
		return general(err, "failed to update expense")
	}

	if result.MatchedCount == 0 {
		return models.NotFound("expense")
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	result, err := s.expenses.DeleteOne(ctx, bson.M{"_id": id.String(), "user_id": userID.String()})
	if err != nil {
		return general(err, "failed to delete expense")
	}

	if result.DeletedCount == 0 {
		return models.NotFound("expense")
	}

	return nil
}

func (s *Store) SetBudget(ctx context.Context, budget *models.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}
	budget.Touch(s.now())

	amount, err := toDecimal128(budget.Amount)
	if err != nil {
		return err
	}

	_, err = s.budgets.UpdateOne(ctx,
		bson.M{"_id": budgetKey(budget.UserID, budget.Month)},
		bson.M{
			"$set": bson.M{
				"user_id":    budget.UserID.String(),
				"month":      budget.Month,
				"amount":     amount,
				"updated_at": budget.UpdatedAt,
			},
			"$setOnInsert": bson.M{
				"created_at": budget.CreatedAt,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return general(err, "failed to set budget")
	}

	return nil
}

func (s *Store) GetBudget(ctx context.Context, userID uuid.UUID, month types.Month) (models.Budget, error) {
	var d budgetDocument
	if err := findOne(ctx, s.budgets, bson.M{"_id": budgetKey(userID, month.String())}, &d, "budget"); err != nil {
		return models.Budget{}, err
	}

	return decoded(d.model())
}

func (s *Store) ListBudgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	opts := options.Find().SetSort(bson.D{{Key: "month", Value: 1}})
	return findAll[budgetDocument, models.Budget](ctx, s.budgets, bson.M{"user_id": userID.String()}, opts, "budgets")
}

func (s *Store) UpdateBudget(ctx context.Context, budget *models.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}
	budget.Touch(s.now())

	amount, err := toDecimal128(budget.Amount)
	if err != nil {
		return err
	}

	result, err := s.budgets.UpdateOne(ctx, bson.M{"_id": budgetKey(budget.UserID, budget.Month)}, bson.M{
		"$set": bson.M{
			"amount":     amount,
			"updated_at": budget.UpdatedAt,
		},
	})
	if err != nil {
		return general(err, "failed to update budget")
	}

	if result.MatchedCount == 0 {
		return models.NotFound("budget")
	}

	return nil
}

func (s *Store) DeleteBudget(ctx context.Context, userID uuid.UUID, month types.Month) error {
	result, err := s.budgets.DeleteOne(ctx, bson.M{"_id": budgetKey(userID, month.String())})
	if err != nil {
		return general(err, "failed to delete budget")
	}

	if result.DeletedCount == 0 {
		return models.NotFound("budget")
	}

	return nil
}

func (s *Store) CreateRecurringExpense(ctx context.Context, recurring *models.RecurringExpense) error {
	if err := recurring.Validate(); err != nil {
		return err
	}

	if recurring.ID == uuid.Nil {
		recurring.ID = uuid.New()
	}
	recurring.Touch(s.now())

	d, err := newRecurringExpenseDocument(*recurring)
	if err != nil {
		return err
	}

	_, err = s.recurringExpenses.InsertOne(ctx, d)
	if err != nil {
		return general(err, "failed to create recurring expense")
	}

	return nil
}

func (s *Store) GetRecurringExpense(ctx context.Context, userID, id uuid.UUID) (models.RecurringExpense, error) {
	var d recurringExpenseDocument
	if err := findOne(ctx, s.recurringExpenses, bson.M{"_id": id.String(), "user_id": userID.String()}, &d, "recurring expense"); err != nil {
		return models.RecurringExpense{}, err
	}

	return decoded(d.model())
}

func (s *Store) ListRecurringExpenses(ctx context.Context, userID uuid.UUID) ([]models.RecurringExpense, error) {
	opts := options.Find().SetSort(bson.D{{Key: "next_due_date", Value: 1}, {Key: "created_at", Value: 1}})
	return findAll[recurringExpenseDocument, models.RecurringExpense](ctx, s.recurringExpenses, bson.M{"user_id": userID.String()}, opts, "recurring expenses")
}

func (s *Store) UpdateRecurringExpense(ctx context.Context, recurring *models.RecurringExpense) error {
	if err := recurring.Validate(); err != nil {
		return err
	}
	recurring.Touch(s.now())

	amount, err := toDecimal128(recurring.Amount)
	if err != nil {
		return err
	}

	result, err := s.recurringExpenses.UpdateOne(ctx, bson.M{"_id": recurring.ID.String(), "user_id": recurring.UserID.String()}, bson.M{
		"$set": bson.M{
			"amount":          amount,
			"category":        string(recurring.Category),
			"description":     recurring.Description,
			"next_due_date":   recurring.NextDueDate,
			"repeat_interval": string(recurring.RepeatInterval),
			"updated_at":      recurring.UpdatedAt,
		},
	})
	if err != nil {
		return general(err, "failed to update recurring expense")
	}

	if result.MatchedCount == 0 {
		return models.NotFound("recurring expense")
	}

	return nil
}

func (s *Store) DeleteRecurringExpense(ctx context.Context, userID, id uuid.UUID) error {
	result, err := s.recurringExpenses.DeleteOne(ctx, bson.M{"_id": id.String(), "user_id": userID.String()})
	if err != nil {
		return general(err, "failed to delete recurring expense")
	}

	if result.DeletedCount == 0 {
		return models.NotFound("recurring expense")
	}

	return nil
}

// BookRecurringExpense inserts the expense and then advances the recurring expense.
//
// The expense ID is derived from the due date. If a previous run inserted the
// expense but failed to advance the due date, the duplicate insert is ignored.
func (s *Store) BookRecurringExpense(ctx context.Context, recurring *models.RecurringExpense, expense *models.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}

	err := s.insertExpense(ctx, expense)
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return general(err, "failed to book recurring expense")
	}

	return s.UpdateRecurringExpense(ctx, recurring)
}
