package service

import (
	"sort"
	"time"

	"folio-be/internal/entities"
	"folio-be/internal/models"
	"folio-be/internal/repository"
)

// In-memory repository fakes shared by the service tests. They mirror the
// store contracts: canonical rows come back as copies, patches merge
// field-by-field, and missing rows yield repository.ErrNotFound.

type fakeUserRepo struct {
	users  map[int64]*entities.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entities.User{}}
}

func cloneUser(u *entities.User) *entities.User {
	c := *u
	return &c
}

func (f *fakeUserRepo) Create(username, email, passwordHash string) (*entities.User, error) {
	f.nextID++
	now := time.Now()
	user := &entities.User{
		ID:        f.nextID,
		Username:  username,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.users[user.ID] = user
	return cloneUser(user), nil
}

func (f *fakeUserRepo) FindByID(id int64) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(user), nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Update(id int64, patch *models.UpdateProfileRequest) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Name != nil {
		user.Name = patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Bio != nil {
		user.Bio = patch.Bio
	}
	if patch.Location != nil {
		user.Location = patch.Location
	}
	if patch.Website != nil {
		user.Website = patch.Website
	}
	if patch.Avatar != nil {
		user.Avatar = patch.Avatar
	}
	user.UpdatedAt = time.Now()
	return cloneUser(user), nil
}

type fakeProjectRepo struct {
	projects map[int64]*entities.Project
	nextID   int64
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[int64]*entities.Project{}}
}

func cloneProject(p *entities.Project) *entities.Project {
	c := *p
	c.Technologies = append([]string{}, p.Technologies...)
	return &c
}

func (f *fakeProjectRepo) GetByUserID(userID int64) ([]*entities.Project, error) {
	result := []*entities.Project{}
	for _, project := range f.projects {
		if project.UserID == userID {
			result = append(result, cloneProject(project))
		}
	}
	// Newest first; ids increase with insertion
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (f *fakeProjectRepo) FindByID(id int64) (*entities.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneProject(project), nil
}

func (f *fakeProjectRepo) Create(userID int64, req *models.CreateProjectRequest) (*entities.Project, error) {
	f.nextID++
	now := time.Now()
	techs := req.Technologies
	if techs == nil {
		techs = []string{}
	}
	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}
	project := &entities.Project{
		ID:           f.nextID,
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Technologies: techs,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		GithubURL:    req.GithubURL,
		Featured:     featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.projects[project.ID] = project
	return cloneProject(project), nil
}

func (f *fakeProjectRepo) Update(id int64, patch *models.UpdateProjectRequest) (*entities.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = patch.Description
	}
	if patch.Category != nil {
		project.Category = patch.Category
	}
	if patch.Technologies != nil {
		project.Technologies = append([]string{}, (*patch.Technologies)...)
	}
	if patch.ImageURL != nil {
		project.ImageURL = patch.ImageURL
	}
	if patch.ProjectURL != nil {
		project.ProjectURL = patch.ProjectURL
	}
	if patch.GithubURL != nil {
		project.GithubURL = patch.GithubURL
	}
	if patch.Featured != nil {
		project.Featured = *patch.Featured
	}
	project.UpdatedAt = time.Now()
	return cloneProject(project), nil
}

func (f *fakeProjectRepo) Delete(id int64) error {
	if _, ok := f.projects[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectRepo) CountByUserID(userID int64) (int, error) {
	count := 0
	for _, project := range f.projects {
		if project.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeSkillRepo struct {
	skills map[int64]*entities.Skill
	nextID int64
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[int64]*entities.Skill{}}
}

func cloneSkill(s *entities.Skill) *entities.Skill {
	c := *s
	return &c
}

func (f *fakeSkillRepo) GetByUserID(userID int64) ([]*entities.Skill, error) {
	result := []*entities.Skill{}
	for _, skill := range f.skills {
		if skill.UserID == userID {
			result = append(result, cloneSkill(skill))
		}
	}
	// Insertion order; ids increase with insertion
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeSkillRepo) FindByID(id int64) (*entities.Skill, error) {
	skill, ok := f.skills[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneSkill(skill), nil
}

func (f *fakeSkillRepo) Create(userID int64, req *models.CreateSkillRequest) (*entities.Skill, error) {
	f.nextID++
	skill := &entities.Skill{
		ID:        f.nextID,
		UserID:    userID,
		Name:      req.Name,
		Level:     req.Level,
		Category:  req.Category,
		CreatedAt: time.Now(),
	}
	f.skills[skill.ID] = skill
	return cloneSkill(skill), nil
}

func (f *fakeSkillRepo) Update(id int64, patch *models.UpdateSkillRequest) (*entities.Skill, error) {
	skill, ok := f.skills[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Name != nil {
		skill.Name = *patch.Name
	}
	if patch.Level != nil {
		skill.Level = *patch.Level
	}
	if patch.Category != nil {
		skill.Category = patch.Category
	}
	return cloneSkill(skill), nil
}

func (f *fakeSkillRepo) Delete(id int64) error {
	if _, ok := f.skills[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.skills, id)
	return nil
}

func (f *fakeSkillRepo) CountByUserID(userID int64) (int, error) {
	count := 0
	for _, skill := range f.skills {
		if skill.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeAchievementRepo struct {
	achievements map[int64]*entities.Achievement
	nextID       int64
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{achievements: map[int64]*entities.Achievement{}}
}

func cloneAchievement(a *entities.Achievement) *entities.Achievement {
	c := *a
	return &c
}

func (f *fakeAchievementRepo) GetByUserID(userID int64) ([]*entities.Achievement, error) {
	result := []*entities.Achievement{}
	for _, achievement := range f.achievements {
		if achievement.UserID == userID {
			result = append(result, cloneAchievement(achievement))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (f *fakeAchievementRepo) FindByID(id int64) (*entities.Achievement, error) {
	achievement, ok := f.achievements[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneAchievement(achievement), nil
}

func (f *fakeAchievementRepo) Create(userID int64, req *models.CreateAchievementRequest) (*entities.Achievement, error) {
	f.nextID++
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	achievement := &entities.Achievement{
		ID:          f.nextID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Date:        date,
		CreatedAt:   time.Now(),
	}
	f.achievements[achievement.ID] = achievement
	return cloneAchievement(achievement), nil
}

func (f *fakeAchievementRepo) Update(id int64, patch *models.UpdateAchievementRequest) (*entities.Achievement, error) {
	achievement, ok := f.achievements[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Title != nil {
		achievement.Title = *patch.Title
	}
	if patch.Description != nil {
		achievement.Description = patch.Description
	}
	if patch.Icon != nil {
		achievement.Icon = patch.Icon
	}
	if patch.Date != nil {
		achievement.Date = *patch.Date
	}
	return cloneAchievement(achievement), nil
}

func (f *fakeAchievementRepo) Delete(id int64) error {
	if _, ok := f.achievements[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.achievements, id)
	return nil
}

func (f *fakeAchievementRepo) CountByUserID(userID int64) (int, error) {
	count := 0
	for _, achievement := range f.achievements {
		if achievement.UserID == userID {
			count++
		}
	}
	return count, nil
}
