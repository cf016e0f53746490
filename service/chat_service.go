package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/edufund/scholarship-finder/catalog"
	"github.com/edufund/scholarship-finder/dto"
	"github.com/edufund/scholarship-finder/store"
)

// intentRule ties a set of trigger keywords to a response builder. Rules are
// evaluated in order; the first rule with any keyword present in the query
// wins, mirroring the keyword tables of the field extractor.
type intentRule struct {
	keywords []string
	respond  func(s *ChatService) string
}

// ChatService answers assistant queries by keyword intent detection over a
// fixed rule set, with responses templated from live catalog counts. All
// per-user state lives in the injected conversation store.
type ChatService struct {
	catalog   *catalog.Catalog
	store     store.ConversationStore
	homeState string
	logger    *zap.Logger
	rules     []intentRule
}

func NewChatService(cat *catalog.Catalog, convStore store.ConversationStore, homeState string, logger *zap.Logger) *ChatService {
	s := &ChatService{
		catalog:   cat,
		store:     convStore,
		homeState: homeState,
		logger:    logger,
	}
	s.rules = []intentRule{
		{[]string{"west bengal", "wb", "bengal", "kolkata"}, (*ChatService).regionResponse},
		{[]string{"kanyashree"}, (*ChatService).kanyashreeResponse},
		{[]string{"scholarship", "amount", "money"}, (*ChatService).overviewResponse},
		{[]string{"eligible", "qualify", "can i get"}, (*ChatService).eligibilityResponse},
		{[]string{"apply", "how to", "process"}, (*ChatService).applicationResponse},
		{[]string{"document", "certificate", "paper"}, (*ChatService).documentsResponse},
		{[]string{"deadline", "last date", "when"}, (*ChatService).deadlineResponse},
	}
	return s
}

// Respond records the query in the user's rolling history and produces the
// templated answer for the detected intent.
func (s *ChatService) Respond(ctx context.Context, userID, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", dto.ErrEmptyQuery
	}
	if userID == "" {
		userID = "default"
	}

	if err := s.store.Append(ctx, userID, query); err != nil {
		// History is best-effort; the answer must still go out.
		s.logger.Warn("failed to record conversation entry",
			zap.String("user_id", userID), zap.Error(err))
	}

	queryLower := strings.ToLower(query)
	for _, rule := range s.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(queryLower, keyword) {
				return rule.respond(s), nil
			}
		}
	}
	return s.defaultResponse(), nil
}

// History returns the user's recent queries.
func (s *ChatService) History(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		userID = "default"
	}
	return s.store.History(ctx, userID)
}

func (s *ChatService) regionResponse() string {
	regional := s.catalog.CountByState(s.homeState)
	national := s.catalog.Len() - regional
	return fmt.Sprintf(`**%s Scholarships**

We have %d scholarships specifically for %s students:
- Kanyashree K1: ₹750/year for girls in Class 8-12
- Kanyashree K2: ₹25,000 one-time for girls aged 18-19
- Swami Vivekananda Merit-cum-Means: ₹15,000 (60%%+ marks)
- Aikyashree: ₹5,000 for minority students
- Dr. Ambedkar SC/ST: ₹12,000
- Taruner Swapna: ₹8,000 for technical courses

Plus %d national scholarships are open to you.

Enter your marks and category to find your matches, or upload your marksheet.`,
		s.homeState, regional, s.homeState, national)
}

func (s *ChatService) kanyashreeResponse() string {
	return `**Kanyashree Prakalpa**

K1 (annual): ₹750/year for unmarried girls in Class 8-12, West Bengal
resident. No income limit.

K2 (one-time): ₹25,000 for unmarried girls aged 18-19 who passed Class 12 and
enrolled in a degree or diploma course.

Documents: Aadhaar, bank account in the girl's name, school/college
certificate, age proof.

Apply online at wbkanyashree.gov.in; the money is credited directly to the
bank account.`
}

func (s *ChatService) overviewResponse() string {
	return fmt.Sprintf(`**%d scholarships available**

By category: SC/ST %d, OBC %d, General %d, Minority %d.

High-value examples: Central Sector Top Class SC ₹2,00,000; Ishan Uday
₹1,00,000; INSPIRE ₹80,000; AICTE Pragati ₹50,000.

Tell me your percentage, family income and category (for example "I have 72%%
marks, income is 3 lakh, OBC category") and I will find your matches.`,
		s.catalog.Len(),
		s.catalog.CountByCategory("SC"),
		s.catalog.CountByCategory("OBC"),
		s.catalog.CountByCategory("General"),
		s.catalog.CountByCategory("Minority"))
}

func (s *ChatService) eligibilityResponse() string {
	return `**Quick eligibility check**

Tell me three things:
1. Your percentage (for example 75% or 8.5 CGPA)
2. Annual family income in ₹
3. Your category (SC/ST/OBC/General/Minority)

I will show every scholarship you qualify for, with amounts, deadlines and
the documents you need. As a rule of thumb: 50%+ marks already qualifies for
a dozen schemes, 80%+ for nearly all of them.`
}

func (s *ChatService) applicationResponse() string {
	return `**How to apply**

1. Check eligibility and note the required percentage and income limit.
2. Gather documents: latest marksheet, income certificate (Tehsildar), caste
   certificate if applicable, Aadhaar, bank passbook, passport photo.
3. Register on scholarships.gov.in (save your application ID and password).
4. Fill the application carefully; name spelling must match your documents.
5. Upload scans (PDF/JPG, usually max 200KB per file).
6. Submit, keep the confirmation, and track the status weekly.

Verification takes 1-2 months, payment 3-6 months after that.`
}

func (s *ChatService) documentsResponse() string {
	return `**Document checklist**

Academic: latest marksheet (attested), previous year marksheet, school or
college ID, admission letter for new students.

Income proof (any one): income certificate from the Tehsil/SDO office, ITR,
or last 6 months of salary slips. The income certificate is valid 6 months.

Category: SC/ST certificate (lifetime), OBC certificate (renew yearly),
non-creamy layer certificate, minority certificate.

Identity: Aadhaar (mandatory), bank passbook in the student's name, recent
passport photo. Keep photocopies and scans of everything ready.`
}

func (s *ChatService) deadlineResponse() string {
	return `**Important deadlines 2025-26**

Urgent: PMSS 15 Oct 2025; AICTE Pragati, Swami Vivekananda, National Merit
31 Oct 2025. Closing soon: NMMS 30 Nov 2025. Open: NSP and Post-Matric
schemes 31 Dec 2025, OBC Central 15 Jan 2026, Kanyashree K2 30 Jun 2026.

Apply at least 15 days early; the portal slows down on the last day. Upload
your marksheet to see your personalised deadlines.`
}

func (s *ChatService) defaultResponse() string {
	return fmt.Sprintf(`Hi! I'm the EduFund scholarship assistant.

I can help you find scholarships by marks, category or state, explain how to
apply, list the documents you need, and track deadlines. %d schemes are in
the catalog right now, with a special focus on %s.

Quick start: tell me "I have X%% marks, Y income, Z category", or ask
"show %s scholarships", "how to apply for Kanyashree?", "what documents do
I need?" or "check deadlines".`,
		s.catalog.Len(), s.homeState, s.homeState)
}
