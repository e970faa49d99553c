package users

import (
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/pkg/utils"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoadIdentities resolves the populated {_id, name, email} view of every
// distinct id in one query. Unknown ids are simply absent from the set.
func LoadIdentities(ctx context.Context, repo contracts.UserRepository, ids ...primitive.ObjectID) (utils.IdentitySet, error) {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	unique := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if id.IsZero() {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return utils.IdentitySet{}, nil
	}

	found, err := repo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	return utils.BuildIdentitySet(found), nil
}
