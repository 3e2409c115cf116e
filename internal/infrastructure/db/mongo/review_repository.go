package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

const (
	modulesCollection  = "modules"
	programsCollection = "programs"
)

// ReviewRepository persists both review variants. The client handle is kept
// alongside the collections because the roster swap runs in a session
// transaction.
type ReviewRepository struct {
	client   *mongo.Client
	modules  *mongo.Collection
	programs *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{
		client:   db.Client(),
		modules:  db.Collection(modulesCollection),
		programs: db.Collection(programsCollection),
	}
}

type mongoModule struct {
	ID                         primitive.ObjectID `bson:"_id,omitempty"`
	ModuleCode                 string             `bson:"moduleCode"`
	FullName                   string             `bson:"fullName"`
	FacultyCode                string             `bson:"facultyCode"`
	AcademicYear               string             `bson:"academicYear"`
	ModuleLeader               string             `bson:"moduleLeader"`
	StudentNumbers             int                `bson:"studentNumbers"`
	EvaluationOperation        string             `bson:"evaluationOperation"`
	EvaluationApproach         string             `bson:"evaluationApproach"`
	InclusiveCurriculum        string             `bson:"inclusiveCurriculum"`
	EffectPastChanges          string             `bson:"effectPastChanges"`
	ProposedFutureChanges      string             `bson:"proposedFutureChanges"`
	QualityAndImprovementPlans string             `bson:"qualityAndImprovementPlans"`
	OtherComments              string             `bson:"otherComments"`
	Author                     string             `bson:"author"`
	Date                       *time.Time         `bson:"date"`
	Status                     string             `bson:"status"`
	Email                      string             `bson:"email"`
}

type mongoProgram struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	RouteCode           string             `bson:"routeCode"`
	FullName            string             `bson:"fullName"`
	FacultyCode         string             `bson:"facultyCode"`
	AcademicYear        string             `bson:"academicYear"`
	ProgramLeader       string             `bson:"programLeader"`
	ProgramTeam         string             `bson:"programTeam"`
	ChangesFromLastYear string             `bson:"changesFromLastYear"`
	StudentFeedback     string             `bson:"studentFeedback"`
	Evaluation          string             `bson:"evaluation"`
	FuturePlanning      string             `bson:"futurePlanning"`
	OtherComments       string             `bson:"otherComments"`
	Author              string             `bson:"author"`
	Date                *time.Time         `bson:"date"`
	Status              string             `bson:"status"`
	Email               string             `bson:"email"`
}

func fromDomainModule(m domain.ModuleReview) mongoModule {
	return mongoModule{
		ModuleCode:                 m.ModuleCode,
		FullName:                   m.FullName,
		FacultyCode:                m.FacultyCode,
		AcademicYear:               m.AcademicYear,
		ModuleLeader:               m.ModuleLeader,
		StudentNumbers:             m.StudentNumbers,
		EvaluationOperation:        m.EvaluationOperation,
		EvaluationApproach:         m.EvaluationApproach,
		InclusiveCurriculum:        m.InclusiveCurriculum,
		EffectPastChanges:          m.EffectPastChanges,
		ProposedFutureChanges:      m.ProposedFutureChanges,
		QualityAndImprovementPlans: m.QualityAndImprovementPlans,
		OtherComments:              m.OtherComments,
		Author:                     m.Author,
		Date:                       m.Date,
		Status:                     string(m.Status),
		Email:                      m.Email,
	}
}

func (mm mongoModule) toDomain() domain.ModuleReview {
	return domain.ModuleReview{
		ID:                         mm.ID.Hex(),
		ModuleCode:                 mm.ModuleCode,
		FullName:                   mm.FullName,
		FacultyCode:                mm.FacultyCode,
		AcademicYear:               mm.AcademicYear,
		ModuleLeader:               mm.ModuleLeader,
		StudentNumbers:             mm.StudentNumbers,
		EvaluationOperation:        mm.EvaluationOperation,
		EvaluationApproach:         mm.EvaluationApproach,
		InclusiveCurriculum:        mm.InclusiveCurriculum,
		EffectPastChanges:          mm.EffectPastChanges,
		ProposedFutureChanges:      mm.ProposedFutureChanges,
		QualityAndImprovementPlans: mm.QualityAndImprovementPlans,
		OtherComments:              mm.OtherComments,
		Author:                     mm.Author,
		Date:                       mm.Date,
		Status:                     domain.ReviewStatus(mm.Status),
		Email:                      mm.Email,
	}
}

func fromDomainProgram(p domain.ProgramReview) mongoProgram {
	return mongoProgram{
		RouteCode:           p.RouteCode,
		FullName:            p.FullName,
		FacultyCode:         p.FacultyCode,
		AcademicYear:        p.AcademicYear,
		ProgramLeader:       p.ProgramLeader,
		ProgramTeam:         p.ProgramTeam,
		ChangesFromLastYear: p.ChangesFromLastYear,
		StudentFeedback:     p.StudentFeedback,
		Evaluation:          p.Evaluation,
		FuturePlanning:      p.FuturePlanning,
		OtherComments:       p.OtherComments,
		Author:              p.Author,
		Date:                p.Date,
		Status:              string(p.Status),
		Email:               p.Email,
	}
}

func (mp mongoProgram) toDomain() domain.ProgramReview {
	return domain.ProgramReview{
		ID:                  mp.ID.Hex(),
		RouteCode:           mp.RouteCode,
		FullName:            mp.FullName,
		FacultyCode:         mp.FacultyCode,
		AcademicYear:        mp.AcademicYear,
		ProgramLeader:       mp.ProgramLeader,
		ProgramTeam:         mp.ProgramTeam,
		ChangesFromLastYear: mp.ChangesFromLastYear,
		StudentFeedback:     mp.StudentFeedback,
		Evaluation:          mp.Evaluation,
		FuturePlanning:      mp.FuturePlanning,
		OtherComments:       mp.OtherComments,
		Author:              mp.Author,
		Date:                mp.Date,
		Status:              domain.ReviewStatus(mp.Status),
		Email:               mp.Email,
	}
}

func (r *ReviewRepository) ListModules(ctx context.Context) ([]domain.ModuleReview, error) {
	return r.findModules(ctx, bson.M{})
}

func (r *ReviewRepository) ListModulesByStatus(ctx context.Context, status domain.ReviewStatus) ([]domain.ModuleReview, error) {
	return r.findModules(ctx, bson.M{"status": string(status)})
}

func (r *ReviewRepository) findModules(ctx context.Context, filter bson.M) ([]domain.ModuleReview, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.modules.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find modules: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.ModuleReview{}
	for cur.Next(ctx) {
		var mm mongoModule
		if err := cur.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode module: %w", err)
		}
		out = append(out, mm.toDomain())
	}
	return out, cur.Err()
}

func (r *ReviewRepository) ListPrograms(ctx context.Context) ([]domain.ProgramReview, error) {
	return r.findPrograms(ctx, bson.M{})
}

func (r *ReviewRepository) ListProgramsByStatus(ctx context.Context, status domain.ReviewStatus) ([]domain.ProgramReview, error) {
	return r.findPrograms(ctx, bson.M{"status": string(status)})
}

func (r *ReviewRepository) findPrograms(ctx context.Context, filter bson.M) ([]domain.ProgramReview, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.programs.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find programs: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.ProgramReview{}
	for cur.Next(ctx) {
		var mp mongoProgram
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode program: %w", err)
		}
		out = append(out, mp.toDomain())
	}
	return out, cur.Err()
}

func (r *ReviewRepository) GetModule(ctx context.Context, id string) (*domain.ModuleReview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mm mongoModule
	if err := r.modules.FindOne(ctx, bson.M{"_id": oid}).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find module: %w", err)
	}
	m := mm.toDomain()
	return &m, nil
}

func (r *ReviewRepository) GetProgram(ctx context.Context, id string) (*domain.ProgramReview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProgram
	if err := r.programs.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find program: %w", err)
	}
	p := mp.toDomain()
	return &p, nil
}

func (r *ReviewRepository) UpdateModule(ctx context.Context, id string, patch domain.ModulePatch) (*domain.ModuleReview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}

	set := bson.M{}
	setString(set, "academicYear", patch.AcademicYear)
	setString(set, "moduleLeader", patch.ModuleLeader)
	if patch.StudentNumbers != nil {
		set["studentNumbers"] = *patch.StudentNumbers
	}
	setString(set, "evaluationOperation", patch.EvaluationOperation)
	setString(set, "evaluationApproach", patch.EvaluationApproach)
	setString(set, "inclusiveCurriculum", patch.InclusiveCurriculum)
	setString(set, "effectPastChanges", patch.EffectPastChanges)
	setString(set, "proposedFutureChanges", patch.ProposedFutureChanges)
	setString(set, "qualityAndImprovementPlans", patch.QualityAndImprovementPlans)
	setString(set, "otherComments", patch.OtherComments)
	setString(set, "author", patch.Author)
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	setString(set, "email", patch.Email)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mm mongoModule
	err = r.modules.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mm)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("update module: %w", err)
	}
	m := mm.toDomain()
	return &m, nil
}

func (r *ReviewRepository) UpdateProgram(ctx context.Context, id string, patch domain.ProgramPatch) (*domain.ProgramReview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}

	set := bson.M{}
	setString(set, "academicYear", patch.AcademicYear)
	setString(set, "programLeader", patch.ProgramLeader)
	setString(set, "programTeam", patch.ProgramTeam)
	setString(set, "changesFromLastYear", patch.ChangesFromLastYear)
	setString(set, "studentFeedback", patch.StudentFeedback)
	setString(set, "evaluation", patch.Evaluation)
	setString(set, "futurePlanning", patch.FuturePlanning)
	setString(set, "otherComments", patch.OtherComments)
	setString(set, "author", patch.Author)
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	setString(set, "email", patch.Email)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProgram
	err = r.programs.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("update program: %w", err)
	}
	p := mp.toDomain()
	return &p, nil
}

func setString(set bson.M, key string, val *string) {
	if val != nil {
		set[key] = *val
	}
}

func (r *ReviewRepository) CountAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	mods, err := r.modules.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count modules: %w", err)
	}
	progs, err := r.programs.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count programs: %w", err)
	}
	return mods + progs, nil
}

// ReplaceAll swaps the entire roster inside one session transaction so a
// failure mid-sequence cannot leave a half-replaced store. Requires the
// deployment to be a replica set; standalone servers reject transactions.
func (r *ReviewRepository) ReplaceAll(ctx context.Context, modules []domain.ModuleReview, programs []domain.ProgramReview) error {
	sess, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.modules.DeleteMany(sc, bson.M{}); err != nil {
			return nil, fmt.Errorf("delete modules: %w", err)
		}
		if _, err := r.programs.DeleteMany(sc, bson.M{}); err != nil {
			return nil, fmt.Errorf("delete programs: %w", err)
		}

		if len(modules) > 0 {
			docs := make([]interface{}, len(modules))
			for i, m := range modules {
				docs[i] = fromDomainModule(m)
			}
			if _, err := r.modules.InsertMany(sc, docs); err != nil {
				return nil, fmt.Errorf("insert modules: %w", err)
			}
		}
		if len(programs) > 0 {
			docs := make([]interface{}, len(programs))
			for i, p := range programs {
				docs[i] = fromDomainProgram(p)
			}
			if _, err := r.programs.InsertMany(sc, docs); err != nil {
				return nil, fmt.Errorf("insert programs: %w", err)
			}
		}
		return nil, nil
	})
	return err
}
