package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"newsapi/internal/model"
	"newsapi/internal/repository"
)

type adminDocument struct {
	ID       bson.ObjectID `bson:"_id"`
	Email    string        `bson:"email"`
	Password string        `bson:"password"`
}

func (d adminDocument) asModel() model.Admin {
	return model.Admin{ID: d.ID.Hex(), Email: d.Email, PasswordHash: d.Password}
}

// AdminMongo is a MongoDB implementation of repository.AdminRepository.
type AdminMongo struct {
	crud[model.Admin, adminDocument]
}

func NewAdminMongo(coll Collection) *AdminMongo {
	return &AdminMongo{crud[model.Admin, adminDocument]{coll: coll, toModel: adminDocument.asModel}}
}

var _ repository.AdminRepository = (*AdminMongo)(nil)

func (r *AdminMongo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AdminMongo) Create(ctx context.Context, a *model.Admin) (*model.Admin, error) {
	id := bson.NewObjectID()
	return r.insert(ctx, id, adminDocument{ID: id, Email: a.Email, Password: a.PasswordHash})
}

func (r *AdminMongo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return r.set(ctx, bson.M{"email": email}, bson.M{"password": passwordHash})
}
