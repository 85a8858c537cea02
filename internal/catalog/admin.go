// Package catalog is the in-memory mock data behind both dashboards.
package catalog

import (
	"time"

	"github.com/bhiohub/bhiohub/internal/articles"
	"github.com/bhiohub/bhiohub/internal/geo"
	"github.com/bhiohub/bhiohub/internal/profile"
	"github.com/bhiohub/bhiohub/internal/talent"
)

// QuickAccess is a counter card. Target names the tab it opens, if any.
type QuickAccess struct {
	Icon   string
	Label  string
	Count  int
	Target string
}

type HighlightKind string

const (
	HighlightTalent  HighlightKind = "talent"
	HighlightMetric  HighlightKind = "metric"
	HighlightArticle HighlightKind = "article"
	HighlightEvent   HighlightKind = "event"
	HighlightRanking HighlightKind = "ranking"
	HighlightNews    HighlightKind = "news"
)

type Highlight struct {
	Kind        HighlightKind
	Title       string
	Description string
	Badge       string
	Detail      string
}

func AdminQuickAccess() []QuickAccess {
	return []QuickAccess{
		{Icon: "◆", Label: "Talentos em Destaque", Count: 12, Target: "talents"},
		{Icon: "+", Label: "Novas Inscrições", Count: 5, Target: "talents"},
		{Icon: "▤", Label: "Análises", Count: 3, Target: "dashboard"},
		{Icon: "★", Label: "Destaques da Semana", Count: 8, Target: "dashboard"},
	}
}

func AdminHighlights() []Highlight {
	return []Highlight{
		{
			Kind:        HighlightTalent,
			Title:       "Novo Talento: Dr. Carlos Andrade",
			Description: "Especialista em Cardiologia com 10 anos de experiência.",
			Badge:       "Especialista em Procedimentos",
			Detail:      "São Paulo, SP",
		},
		{
			Kind:        HighlightMetric,
			Title:       "Aumento de 15% em Inscrições",
			Description: "Comparado à semana anterior.",
			Detail:      "+15%",
		},
		{
			Kind:        HighlightArticle,
			Title:       "Novo Artigo Publicado",
			Description: "Tendências em Telemedicina para 2025.",
			Detail:      "/articles/telemedicina-2025",
		},
	}
}

func Talents() []talent.Talent {
	return []talent.Talent{
		{
			ID: 1, Name: "Dr. Ana Silva", Role: "Cardiologista Sênior",
			Trails:   []string{"Cardiologia Avançada", "Gestão de Pacientes Crônicos"},
			Badges:   []string{"Especialista em Procedimentos", "Liderança em Saúde"},
			Level:    talent.LevelGold,
			Progress: 92, ReadyFor: "5 processos críticos", Location: "São Paulo, SP",
		},
		{
			ID: 2, Name: "Enf. Bruno Costa", Role: "Enfermeiro Chefe UTI",
			Trails:   []string{"Cuidados Intensivos", "Protocolos de Emergência"},
			Badges:   []string{"Apto para Auditoria"},
			Level:    talent.LevelSilver,
			Progress: 78, ReadyFor: "3 processos de auditoria", Location: "Rio de Janeiro, RJ",
		},
		{
			ID: 3, Name: "Fisio. Carla Lima", Role: "Fisioterapeuta Respiratória",
			Trails:   []string{"Reabilitação Pulmonar", "Ventilação Mecânica"},
			Badges:   []string{"Inovação Clínica"},
			Level:    talent.LevelBronze,
			Progress: 65, ReadyFor: "2 processos de reabilitação", Location: "Belo Horizonte, MG",
		},
		{
			ID: 4, Name: "Dr. Marcos Oliveira", Role: "Cirurgião Geral",
			Trails:   []string{"Técnicas Cirúrgicas Avançadas", "Pós-operatório Complexo"},
			Badges:   []string{"Especialista em Procedimentos", "Apto para Auditoria"},
			Level:    talent.LevelGold,
			Progress: 95, ReadyFor: "6 processos cirúrgicos", Location: "Curitiba, PR",
		},
	}
}

func ExpertiseBadges() []talent.Option {
	return []talent.Option{
		{ID: talent.All, Name: "Todas as Especialidades"},
		{ID: "procedimentos", Name: "Especialista em Procedimentos"},
		{ID: "auditoria", Name: "Apto para Auditoria"},
		{ID: "gestao", Name: "Liderança em Saúde"},
		{ID: "inovacao", Name: "Inovação Clínica"},
	}
}

func Levels() []talent.Option {
	return []talent.Option{
		{ID: talent.All, Name: "Todos os Níveis"},
		{ID: string(talent.LevelBronze), Name: "Bronze"},
		{ID: string(talent.LevelSilver), Name: "Prata"},
		{ID: string(talent.LevelGold), Name: "Ouro"},
	}
}

func Locations() []geo.Location {
	return []geo.Location{
		{ID: 1, Name: "Dr. Ana Silva", Role: "Cardiologista Sênior", City: "São Paulo", State: "SP",
			Position: geo.Point{Lat: -23.5505, Lng: -46.6333}, Expertise: []string{"Cardiologia", "Gestão"}, Phone: "+55 11 85858-55555"},
		{ID: 2, Name: "Enf. Bruno Costa", Role: "Enfermeiro Chefe UTI", City: "Rio de Janeiro", State: "RJ",
			Position: geo.Point{Lat: -22.9068, Lng: -43.1729}, Expertise: []string{"UTI", "Emergência"}, Phone: "+55 21 77777-7777"},
		{ID: 3, Name: "Fisio. Carla Lima", Role: "Fisioterapeuta Respiratória", City: "Belo Horizonte", State: "MG",
			Position: geo.Point{Lat: -19.9167, Lng: -43.9345}, Expertise: []string{"Respiratória", "Reabilitação"}, Phone: "+55 31 55555-5555"},
		{ID: 4, Name: "Dr. Marcos Oliveira", Role: "Cirurgião Geral", City: "Curitiba", State: "PR",
			Position: geo.Point{Lat: -25.4284, Lng: -49.2733}, Expertise: []string{"Cirurgia", "Auditoria"}, Phone: "+55 41 99999-9999"},
		{ID: 5, Name: "Dra. Sofia Pereira", Role: "Pediatra", City: "Porto Alegre", State: "RS",
			Position: geo.Point{Lat: -30.0346, Lng: -51.2177}, Expertise: []string{"Pediatria", "Neonatal"}, Phone: "+55 51 88888-8888"},
		{ID: 6, Name: "Psic. Ricardo Alves", Role: "Psicólogo Clínico", City: "Salvador", State: "BA",
			Position: geo.Point{Lat: -12.9714, Lng: -38.5014}, Expertise: []string{"Clínica", "Terapia Comportamental"}, Phone: "+55 73 66666-6666"},
	}
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func SeedArticles() []articles.Article {
	return []articles.Article{
		{
			ID: "1", Title: "Avanços em Telemedicina Pós-Pandemia", DocName: "telemedicina_avancos.docx",
			Status: articles.StatusVideoReady, Progress: 100, VideoURL: articles.PlaceholderVideoURL, Views: 1250,
			UploadedAt: day("2025-05-15"), Thumbnail: "Abstract image of medical technology",
		},
		{
			ID: "2", Title: "IA na Detecção Precoce de Doenças Crônicas", DocName: "ia_deteccao_doencas.pdf",
			Status: articles.StatusProcessing, Progress: 65,
			UploadedAt: day("2025-06-01"), Thumbnail: "AI brain scan analysis",
		},
		{
			ID: "3", Title: "Humanização no Atendimento em Saúde Digital", DocName: "humanizacao_saude_digital.docx",
			Status:     articles.StatusPending,
			UploadedAt: day("2025-06-03"), Thumbnail: "Doctor holding patient hand via video call",
		},
	}
}

func AdminProfile() profile.Admin {
	return profile.Admin{
		Name:  "Administrador BhioHub",
		Email: "admin@bhiohub.com.br",
		Phone: "(11) 98765-4321",
		Role:  "Super Administrador",
	}
}
