package course

import "github.com/trevsky25/easypayuniversity-sub001/internal/model"

// Units returns the training catalog. Keep unit IDs stable because the
// ledger's completion records and transaction links embed them.
func Units() []Unit {
	quiz := model.QuizConfig{
		TimeLimitMinutes: DefaultTimeLimitMinutes,
		PassingScore:     DefaultPassingScore,
	}
	return []Unit{
		{
			ID:          1,
			Title:       "Payment Processing Basics",
			Description: "How card transactions move from terminal to settlement",
			Quiz:        quiz,
			Questions: []model.Question{
				{
					ID:            1,
					Type:          model.SingleChoice,
					Prompt:        "Which party requests authorization when a card is swiped?",
					Options:       []string{"The issuing bank", "The merchant's processor", "The card network", "The cardholder"},
					CorrectOption: 1,
					Explanation:   "The processor forwards the authorization request on the merchant's behalf.",
					Points:        10,
				},
				{
					ID:            2,
					Type:          model.TrueFalse,
					Prompt:        "Settlement and authorization happen in the same step.",
					Options:       []string{"True", "False"},
					CorrectOption: 1,
					Explanation:   "Authorization holds funds; settlement moves them in a later batch.",
					Points:        10,
				},
				{
					ID:             3,
					Type:           model.MultiSelect,
					Prompt:         "Select everything a batch settlement includes.",
					Options:        []string{"Captured sales", "Refunds", "Declined attempts", "Voided transactions"},
					CorrectOptions: []int{0, 1},
					Explanation:    "Declines and voids never enter the settlement batch.",
					Points:         10,
				},
				{
					ID:            4,
					Type:          model.ScenarioSingleChoice,
					Prompt:        "What should the merchant do first?",
					ScenarioText:  "A terminal goes offline in the middle of the business day and cards stop reading.",
					Options:       []string{"Write card numbers down for later", "Switch to the backup entry method", "Close for the day", "Call the cardholder's bank"},
					CorrectOption: 1,
					Explanation:   "Fallback entry keeps sales flowing without storing card data by hand.",
					Points:        10,
				},
			},
		},
		{
			ID:          2,
			Title:       "Promotional Financing",
			Description: "Offering deferred-interest and equal-payment plans",
			Quiz:        quiz,
			Questions: []model.Question{
				{
					ID:            1,
					Type:          model.SingleChoice,
					Prompt:        "When does deferred interest retroactively apply?",
					Options:       []string{"Never", "If the balance is unpaid at term end", "After the first missed payment", "At purchase"},
					CorrectOption: 1,
					Explanation:   "Interest accrues from purchase and lands only if the promo balance survives the term.",
					Points:        10,
				},
				{
					ID:            2,
					Type:          model.TrueFalse,
					Prompt:        "Merchants must present financing terms before enrollment.",
					Options:       []string{"True", "False"},
					CorrectOption: 0,
					Explanation:   "Terms disclosure comes before the customer commits.",
					Points:        10,
				},
				{
					ID:             3,
					Type:           model.MultiSelect,
					Prompt:         "Which details belong in a financing offer disclosure?",
					Options:        []string{"Promotional period length", "Purchase APR", "Merchant's processing fee", "Minimum payment terms"},
					CorrectOptions: []int{0, 1, 3},
					Explanation:    "The merchant's own fees are not part of the consumer disclosure.",
					Points:         10,
				},
				{
					ID:          4,
					Type:        model.FreeText,
					Prompt:      "Describe how you would explain a 12-month equal-payment plan to a customer.",
					Explanation: "A good answer covers the fixed monthly amount and the payoff date.",
					Points:      10,
				},
			},
		},
		{
			ID:          3,
			Title:       "Fee Caps and Compliance",
			Description: "Card-network surcharge rules and fee-cap programs",
			Quiz:        quiz,
			Questions: []model.Question{
				{
					ID:            1,
					Type:          model.TrueFalse,
					Prompt:        "Surcharges may exceed the merchant's cost of acceptance.",
					Options:       []string{"True", "False"},
					CorrectOption: 1,
					Explanation:   "Network rules cap surcharges at cost of acceptance.",
					Points:        10,
				},
				{
					ID:            2,
					Type:          model.SingleChoice,
					Prompt:        "Where must a surcharge be disclosed?",
					Options:       []string{"Only on the receipt", "At the point of entry and point of sale", "On the merchant's website only", "Nowhere, if under 1%"},
					CorrectOption: 1,
					Explanation:   "Both store entry and the register need surcharge signage.",
					Points:        10,
				},
				{
					ID:            3,
					Type:          model.ScenarioSingleChoice,
					Prompt:        "How should the merchant respond?",
					ScenarioText:  "A customer challenges a surcharge line item at checkout and asks for the rule that allows it.",
					Options:       []string{"Remove the surcharge quietly", "Point to the posted disclosure and itemized receipt", "Tell them to contact the card network", "Refuse the sale"},
					CorrectOption: 1,
					Explanation:   "Posted disclosure plus an itemized receipt is the compliant answer.",
					Points:        10,
				},
				{
					ID:             4,
					Type:           model.MultiSelect,
					Prompt:         "Select the records a fee-cap audit can request.",
					Options:        []string{"Itemized receipts", "Signage photos", "Customer names", "Statement history"},
					CorrectOptions: []int{0, 1, 3},
					Explanation:    "Audits look at fees and disclosure, not customer identity.",
					Points:         10,
				},
			},
		},
		{
			ID:          4,
			Title:       "Customer Conversations",
			Description: "Handling objections and financing questions on the floor",
			Quiz:        quiz,
			Questions: []model.Question{
				{
					ID:            1,
					Type:          model.ScenarioSingleChoice,
					Prompt:        "What is the best first response?",
					ScenarioText:  "A customer says financing feels like a trap and walks toward the door.",
					Options:       []string{"Offer a discount instead", "Acknowledge the concern and explain the fixed terms", "Let them leave", "Promise there is no interest ever"},
					CorrectOption: 1,
					Explanation:   "Acknowledge, then explain the actual terms; never overpromise.",
					Points:        10,
				},
				{
					ID:            2,
					Type:          model.TrueFalse,
					Prompt:        "It is acceptable to fill out a financing application for the customer.",
					Options:       []string{"True", "False"},
					CorrectOption: 1,
					Explanation:   "The applicant enters their own information, always.",
					Points:        10,
				},
				{
					ID:          3,
					Type:        model.FreeText,
					Prompt:      "Write the opening line you would use to introduce a financing option.",
					Explanation: "An effective opener names the monthly amount, not just the total.",
					Points:      10,
				},
				{
					ID:            4,
					Type:          model.SingleChoice,
					Prompt:        "A declined applicant should be told what?",
					Options:       []string{"The decline reason you assume", "That the lender will send details directly", "To reapply immediately", "Nothing at all"},
					CorrectOption: 1,
					Explanation:   "Adverse-action details come from the lender, not the merchant.",
					Points:        10,
				},
			},
		},
		{
			ID:          5,
			Title:       "Disputes and Chargebacks",
			Description: "Preventing and responding to cardholder disputes",
			Quiz:        quiz,
			Questions: []model.Question{
				{
					ID:            1,
					Type:          model.SingleChoice,
					Prompt:        "What is the merchant's strongest chargeback defense?",
					Options:       []string{"A verbal agreement", "Signed proof of delivery", "A store policy sign", "The employee's memory"},
					CorrectOption: 1,
					Explanation:   "Documented delivery or pickup evidence wins representment.",
					Points:        10,
				},
				{
					ID:            2,
					Type:          model.TrueFalse,
					Prompt:        "Responding after the representment deadline still counts.",
					Options:       []string{"True", "False"},
					CorrectOption: 1,
					Explanation:   "Late responses are closed in the cardholder's favor.",
					Points:        10,
				},
				{
					ID:             3,
					Type:           model.MultiSelect,
					Prompt:         "Which practices reduce dispute volume?",
					Options:        []string{"Clear billing descriptors", "Fast refunds on request", "Hiding the return policy", "Delivery confirmation"},
					CorrectOptions: []int{0, 1, 3},
					Explanation:    "Anything that surprises the cardholder drives disputes up.",
					Points:         10,
				},
				{
					ID:            4,
					Type:          model.ScenarioSingleChoice,
					Prompt:        "What should happen next?",
					ScenarioText:  "A dispute arrives for an order the customer already returned and was refunded for.",
					Options:       []string{"Accept the chargeback", "Submit the refund record as representment evidence", "Refund a second time", "Contact the customer to withdraw it"},
					CorrectOption: 1,
					Explanation:   "The refund record proves the charge was already made whole.",
					Points:        10,
				},
			},
		},
	}
}
