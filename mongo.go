package peepsgo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const accountsCollection = "accounts"

// MongoEndpoint persists one document per account:
// {accountId: <string>, peeps: [{peepId: <string>, ...attrs}]}.
type MongoEndpoint struct {
	client *mongo.Client
	dbname string
	log    *zerolog.Logger
}

var (
	_ Repository = (*MongoEndpoint)(nil)
)

func NewMongoEndpoint(ctx context.Context, uri, dbname string, log *zerolog.Logger) (*MongoEndpoint, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	endpt := &MongoEndpoint{
		client: client,
		dbname: dbname,
		log:    log,
	}
	return endpt, nil
}

func (m *MongoEndpoint) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// withCollection scopes a storage round-trip to the accounts collection and
// normalizes driver failures to ErrStorageUnavailable on every exit path.
func (m *MongoEndpoint) withCollection(fn func(coll *mongo.Collection) error) error {
	coll := m.client.Database(m.dbname).Collection(accountsCollection)
	if err := fn(coll); err != nil {
		if errors.As(err, &ErrNotFound{}) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func byAccountID(accountID string) bson.D {
	return bson.D{{Key: "accountId", Value: accountID}}
}

func (m *MongoEndpoint) ListAccounts(ctx context.Context) ([]Account, error) {
	var accts []Account
	err := m.withCollection(func(coll *mongo.Collection) error {
		cur, err := coll.Find(ctx, bson.D{})
		if err != nil {
			return err
		}
		if err = cur.All(ctx, &accts); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if accts == nil {
		accts = []Account{}
	}
	for i := range accts {
		if accts[i].Peeps == nil {
			accts[i].Peeps = []Peep{}
		}
	}
	return accts, nil
}

func (m *MongoEndpoint) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	var acct Account
	err := m.withCollection(func(coll *mongo.Collection) error {
		err := coll.FindOne(ctx, byAccountID(accountID)).Decode(&acct)
		if err == mongo.ErrNoDocuments {
			return ErrNotFound{Resource: "account", ID: accountID}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if acct.Peeps == nil {
		acct.Peeps = []Peep{}
	}
	return &acct, nil
}

func (m *MongoEndpoint) CreateAccount(ctx context.Context, accountID string) (*Account, error) {
	acct := &Account{
		AccountID: accountID,
		Peeps:     []Peep{},
	}
	err := m.withCollection(func(coll *mongo.Collection) error {
		_, err := coll.InsertOne(ctx, acct)
		return err
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}

func (m *MongoEndpoint) DeleteAllAccounts(ctx context.Context) error {
	return m.withCollection(func(coll *mongo.Collection) error {
		_, err := coll.DeleteMany(ctx, bson.D{})
		return err
	})
}

func (m *MongoEndpoint) DeleteAccount(ctx context.Context, accountID string) error {
	// deleting an absent account is a silent success
	return m.withCollection(func(coll *mongo.Collection) error {
		_, err := coll.DeleteOne(ctx, byAccountID(accountID))
		return err
	})
}

func (m *MongoEndpoint) ReplacePeeps(ctx context.Context, accountID string, peeps []Peep) error {
	if peeps == nil {
		peeps = []Peep{}
	}
	return m.withCollection(func(coll *mongo.Collection) error {
		res, err := coll.UpdateOne(ctx, byAccountID(accountID),
			bson.D{{Key: "$set", Value: bson.D{{Key: "peeps", Value: peeps}}}})
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotFound{Resource: "account", ID: accountID}
		}
		return nil
	})
}
