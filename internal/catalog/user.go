package catalog

func UserQuickAccess() []QuickAccess {
	return []QuickAccess{
		{Icon: "▣", Label: "Meus Cursos", Count: 12, Target: "courses"},
		{Icon: "↝", Label: "Minhas Trilhas", Count: 3, Target: "courses"},
		{Icon: "★", Label: "Conquistas", Count: 8, Target: "evolution"},
		{Icon: "☰", Label: "Fórum", Count: 24, Target: "community"},
	}
}

func UserHighlights() []Highlight {
	return []Highlight{
		{
			Kind:        HighlightEvent,
			Title:       "Workshop: Técnicas Avançadas de Procedimentos",
			Description: "15 Dez · 45 participantes",
			Detail:      "Inscrições Abertas",
		},
		{
			Kind:        HighlightRanking,
			Title:       "Top 5 da Semana - Engajamento",
			Description: "Você está em 3º lugar!",
			Badge:       "bronze",
		},
		{
			Kind:        HighlightNews,
			Title:       "Nova Trilha: Qualidade e Segurança",
			Description: "Explore os novos módulos disponíveis",
			Detail:      "Novo",
		},
	}
}

type Category struct {
	ID    string
	Name  string
	Count int
}

// AllCategories is the category id that shows every course.
const AllCategories = "all"

func Categories() []Category {
	return []Category{
		{ID: AllCategories, Name: "Todos", Count: 24},
		{ID: "procedures", Name: "Procedimentos", Count: 8},
		{ID: "soft-skills", Name: "Soft Skills", Count: 6},
		{ID: "quality", Name: "Qualidade", Count: 5},
		{ID: "safety", Name: "Segurança", Count: 5},
	}
}

type LearningPath struct {
	ID       int
	Title    string
	Level    string
	Progress int
	Courses  int
	Duration string
}

func LearningPaths() []LearningPath {
	return []LearningPath{
		{ID: 1, Title: "Trilha Básica - Fundamentos", Level: "Básico", Progress: 75, Courses: 4, Duration: "12h"},
		{ID: 2, Title: "Trilha Intermediária - Especialização", Level: "Intermediário", Progress: 45, Courses: 6, Duration: "18h"},
		{ID: 3, Title: "Trilha Avançada - Liderança", Level: "Avançado", Progress: 20, Courses: 8, Duration: "24h"},
	}
}

type Course struct {
	ID         int
	Title      string
	Category   string
	Duration   string
	Students   int
	Rating     float64
	Progress   int
	Required   bool
	Instructor string
}

func Courses() []Course {
	return []Course{
		{ID: 1, Title: "Técnicas Básicas de Procedimentos Médicos", Category: "procedures", Duration: "4h 30min",
			Students: 156, Rating: 4.8, Progress: 85, Required: true, Instructor: "Dr. Maria Silva"},
		{ID: 2, Title: "Comunicação Efetiva com Pacientes", Category: "soft-skills", Duration: "3h 15min",
			Students: 203, Rating: 4.9, Progress: 60, Instructor: "Psic. João Santos"},
		{ID: 3, Title: "Controle de Qualidade em Laboratórios", Category: "quality", Duration: "5h 45min",
			Students: 89, Rating: 4.7, Progress: 0, Required: true, Instructor: "Dra. Ana Costa"},
		{ID: 4, Title: "Segurança do Paciente e Prevenção de Erros", Category: "safety", Duration: "6h 20min",
			Students: 134, Rating: 4.8, Progress: 30, Required: true, Instructor: "Dr. Carlos Lima"},
	}
}

// CoursesIn filters by category id; AllCategories keeps everything.
func CoursesIn(courses []Course, category string) []Course {
	if category == "" || category == AllCategories {
		return courses
	}
	var out []Course
	for _, c := range courses {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

type Recommendation struct {
	ID       int
	Title    string
	Reason   string
	Duration string
	Rating   float64
}

func RecommendedCourses() []Recommendation {
	return []Recommendation{
		{ID: 5, Title: "Gestão de Equipes em Saúde", Reason: "Baseado no seu perfil de liderança", Duration: "4h", Rating: 4.9},
		{ID: 6, Title: "Inovação em Procedimentos", Reason: "Complementa seus cursos atuais", Duration: "3h 30min", Rating: 4.7},
	}
}

type UserStats struct {
	Level            string
	CurrentXP        int
	NextLevelXP      int
	TotalCourses     int
	CompletedCourses int
	Certificates     int
	StudyHours       int
}

// XPPercent is the share of the next level already earned.
func (s UserStats) XPPercent() int {
	if s.NextLevelXP <= 0 {
		return 0
	}
	return s.CurrentXP * 100 / s.NextLevelXP
}

func Stats() UserStats {
	return UserStats{
		Level: "Especialista", CurrentXP: 2850, NextLevelXP: 3500,
		TotalCourses: 24, CompletedCourses: 18, Certificates: 12, StudyHours: 156,
	}
}

type Skill struct {
	Name     string
	Level    int
	Category string
}

func Skills() []Skill {
	return []Skill{
		{Name: "Procedimentos Médicos", Level: 85, Category: "Técnico"},
		{Name: "Comunicação", Level: 92, Category: "Soft Skills"},
		{Name: "Liderança", Level: 78, Category: "Gestão"},
		{Name: "Qualidade", Level: 88, Category: "Técnico"},
		{Name: "Segurança do Paciente", Level: 95, Category: "Técnico"},
		{Name: "Trabalho em Equipe", Level: 90, Category: "Soft Skills"},
	}
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

type Achievement struct {
	ID          int
	Title       string
	Description string
	Icon        string
	Date        string
	Rarity      Rarity
}

func Achievements() []Achievement {
	return []Achievement{
		{ID: 1, Title: "Primeiro Curso Concluído", Description: "Parabéns por completar seu primeiro curso!",
			Icon: "▣", Date: "15 Nov 2024", Rarity: RarityCommon},
		{ID: 2, Title: "Especialista em Procedimentos", Description: "Concluiu 5 cursos de procedimentos médicos",
			Icon: "✪", Date: "28 Nov 2024", Rarity: RarityRare},
		{ID: 3, Title: "Comunicador Excepcional", Description: "Alcançou 90% em habilidades de comunicação",
			Icon: "☺", Date: "05 Dez 2024", Rarity: RarityEpic},
		{ID: 4, Title: "Maratonista do Conhecimento", Description: "Estudou por mais de 100 horas",
			Icon: "◷", Date: "10 Dez 2024", Rarity: RarityLegendary},
	}
}

type MonthProgress struct {
	Month   string
	Courses int
	Hours   int
}

func MonthlyProgress() []MonthProgress {
	return []MonthProgress{
		{Month: "Ago", Courses: 2, Hours: 12},
		{Month: "Set", Courses: 3, Hours: 18},
		{Month: "Out", Courses: 4, Hours: 24},
		{Month: "Nov", Courses: 5, Hours: 32},
		{Month: "Dez", Courses: 4, Hours: 28},
	}
}

type Topic struct {
	Title   string
	Author  string
	Replies int
	Tag     string
}

func CommunityTopics() []Topic {
	return []Topic{
		{Title: "Boas práticas de higienização em UTI", Author: "Enf. Bruno Costa", Replies: 18, Tag: "Segurança"},
		{Title: "Dúvidas sobre a Trilha Intermediária", Author: "Fisio. Carla Lima", Replies: 7, Tag: "Trilhas"},
		{Title: "Workshop de Procedimentos: quem vai?", Author: "Dr. Ana Silva", Replies: 24, Tag: "Eventos"},
		{Title: "Comunicação de más notícias ao paciente", Author: "Psic. Ricardo Alves", Replies: 11, Tag: "Soft Skills"},
	}
}

type Connection struct {
	Name   string
	Role   string
	City   string
	Mutual int
}

func Connections() []Connection {
	return []Connection{
		{Name: "Dr. Ana Silva", Role: "Cardiologista Sênior", City: "São Paulo, SP", Mutual: 12},
		{Name: "Enf. Bruno Costa", Role: "Enfermeiro Chefe UTI", City: "Rio de Janeiro, RJ", Mutual: 8},
		{Name: "Dra. Sofia Pereira", Role: "Pediatra", City: "Porto Alegre, RS", Mutual: 5},
		{Name: "Psic. Ricardo Alves", Role: "Psicólogo Clínico", City: "Salvador, BA", Mutual: 3},
	}
}

type UserProfile struct {
	Name  string
	Email string
	Role  string
	Unit  string
}

func User() UserProfile {
	return UserProfile{
		Name:  "Profissional BhioHub",
		Email: "voce@bhiohub.com.br",
		Role:  "Enfermeira Assistencial",
		Unit:  "Hospital Central - São Paulo",
	}
}
