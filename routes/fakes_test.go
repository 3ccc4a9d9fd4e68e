package routes

import (
	"context"
	"sort"
	"sync"

	"github.com/xpsc-club/xpsc-server/models"
	"github.com/xpsc-club/xpsc-server/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memCollection is an in-memory stand-in for one document collection.
type memCollection struct {
	mu     sync.Mutex
	docs   []models.Document
	writes int
}

func (c *memCollection) all(match func(models.Document) bool) []models.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Document, 0)
	for _, d := range c.docs {
		if match == nil || match(d) {
			out = append(out, copyDoc(d))
		}
	}
	return out
}

func (c *memCollection) first(match func(models.Document) bool) models.Document {
	found := c.all(match)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

func (c *memCollection) insert(doc models.Document) *models.InsertResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes++
	stored := copyDoc(doc)
	id := primitive.NewObjectID()
	stored["_id"] = id
	c.docs = append(c.docs, stored)
	return &models.InsertResult{Acknowledged: true, InsertedID: id}
}

func (c *memCollection) set(id string, fields interface{}) (*models.UpdateResult, error) {
	oid, err := repositories.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	raw, err := bson.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var update bson.M
	if err := bson.Unmarshal(raw, &update); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes++
	res := &models.UpdateResult{Acknowledged: true}
	for _, d := range c.docs {
		if d["_id"] == oid {
			for k, v := range update {
				d[k] = v
			}
			res.MatchedCount = 1
			res.ModifiedCount = 1
			break
		}
	}
	return res, nil
}

func (c *memCollection) deleteWhere(match func(models.Document) bool) *models.DeleteResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes++
	kept := c.docs[:0]
	var deleted int64
	for _, d := range c.docs {
		if match(d) {
			deleted++
			continue
		}
		kept = append(kept, d)
	}
	c.docs = kept
	return &models.DeleteResult{Acknowledged: true, DeletedCount: deleted}
}

func (c *memCollection) deleteByID(id string) (*models.DeleteResult, error) {
	oid, err := repositories.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return c.deleteWhere(func(d models.Document) bool { return d["_id"] == oid }), nil
}

func (c *memCollection) getByID(id string) (models.Document, error) {
	oid, err := repositories.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return c.first(func(d models.Document) bool { return d["_id"] == oid }), nil
}

func (c *memCollection) writeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

func copyDoc(d models.Document) models.Document {
	out := make(models.Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func numberEquals(v interface{}, want int64) bool {
	n, ok := number(v)
	return ok && n == float64(want)
}

func window(docs []models.Document, page models.Page) []models.Document {
	start := page.Skip()
	if start >= int64(len(docs)) {
		return []models.Document{}
	}
	end := start + page.Limit()
	if end > int64(len(docs)) {
		end = int64(len(docs))
	}
	return docs[start:end]
}

type memAllUsers struct{ memCollection }

func (r *memAllUsers) List(context.Context) ([]models.Document, error) {
	return r.all(nil), nil
}

func (r *memAllUsers) GetByEmail(_ context.Context, email string) (models.Document, error) {
	return r.first(func(d models.Document) bool { return d["email"] == email }), nil
}

func (r *memAllUsers) Create(_ context.Context, user models.Document) (*models.InsertResult, error) {
	return r.insert(user), nil
}

func (r *memAllUsers) Update(_ context.Context, id string, fields models.AllUserFields) (*models.UpdateResult, error) {
	return r.set(id, fields)
}

func (r *memAllUsers) Delete(_ context.Context, id string) (*models.DeleteResult, error) {
	return r.deleteByID(id)
}

type memClubUsers struct{ memCollection }

func (r *memClubUsers) List(context.Context) ([]models.Document, error) {
	return r.all(nil), nil
}

func (r *memClubUsers) Leaderboard(_ context.Context, page models.Page) ([]models.Document, error) {
	docs := r.all(nil)
	sort.SliceStable(docs, func(i, j int) bool {
		a, _ := number(docs[i]["codeforcesMaxRating"])
		b, _ := number(docs[j]["codeforcesMaxRating"])
		return a > b
	})
	return window(docs, page), nil
}

func (r *memClubUsers) GetByID(_ context.Context, id string) (models.Document, error) {
	return r.getByID(id)
}

func (r *memClubUsers) Count(context.Context) (int64, error) {
	return int64(len(r.all(nil))), nil
}

func (r *memClubUsers) Create(_ context.Context, member models.Document) (*models.InsertResult, error) {
	return r.insert(member), nil
}

func (r *memClubUsers) Update(_ context.Context, id string, fields models.ClubUserFields) (*models.UpdateResult, error) {
	return r.set(id, fields)
}

func (r *memClubUsers) SetImage(_ context.Context, id string, imageURL string) (*models.UpdateResult, error) {
	return r.set(id, bson.M{"image": imageURL})
}

func (r *memClubUsers) Delete(_ context.Context, id string) (*models.DeleteResult, error) {
	return r.deleteByID(id)
}

type memContests struct{ memCollection }

func (r *memContests) List(context.Context) ([]models.Document, error) {
	return r.all(nil), nil
}

func (r *memContests) GetByID(_ context.Context, id string) (models.Document, error) {
	return r.getByID(id)
}

func (r *memContests) GetByContestID(_ context.Context, contestID int64) (models.Document, error) {
	return r.first(func(d models.Document) bool { return numberEquals(d["contestId"], contestID) }), nil
}

func (r *memContests) Create(_ context.Context, contest models.Document) (*models.InsertResult, error) {
	return r.insert(contest), nil
}

func (r *memContests) Update(_ context.Context, id string, fields models.ContestFields) (*models.UpdateResult, error) {
	return r.set(id, fields)
}

func (r *memContests) Delete(_ context.Context, id string) (*models.DeleteResult, error) {
	return r.deleteByID(id)
}

type memResults struct{ memCollection }

func inContest(contestID int64, participation *models.Participation) func(models.Document) bool {
	return func(d models.Document) bool {
		if !numberEquals(d["contestId"], contestID) {
			return false
		}
		return participation == nil || numberEquals(d["participate"], int64(participation.StoredValue()))
	}
}

func (r *memResults) CountByContest(_ context.Context, contestID int64, participation *models.Participation) (int64, error) {
	return int64(len(r.all(inContest(contestID, participation)))), nil
}

func (r *memResults) ListByContest(_ context.Context, contestID int64, participation models.Participation, page models.Page) ([]models.Document, error) {
	docs := r.all(inContest(contestID, &participation))
	sort.SliceStable(docs, func(i, j int) bool {
		a, _ := number(docs[i]["globalStandings"])
		b, _ := number(docs[j]["globalStandings"])
		return a < b
	})
	return window(docs, page), nil
}

func (r *memResults) GetByContestAndUser(_ context.Context, contestID int64, userName string) (models.Document, error) {
	match := inContest(contestID, nil)
	return r.first(func(d models.Document) bool { return match(d) && d["userName"] == userName }), nil
}

func (r *memResults) Create(_ context.Context, result models.Document) (*models.InsertResult, error) {
	return r.insert(result), nil
}

func (r *memResults) DeleteByContest(_ context.Context, contestID int64) (*models.DeleteResult, error) {
	return r.deleteWhere(inContest(contestID, nil)), nil
}

func (r *memResults) DeleteByUserName(_ context.Context, userName string) (*models.DeleteResult, error) {
	return r.deleteWhere(func(d models.Document) bool { return d["userName"] == userName }), nil
}
