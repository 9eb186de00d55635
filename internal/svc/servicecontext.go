package svc

import (
	"log"

	"frank-api/internal/config"
	assistantpkg "frank-api/pkg/assistant"
	coinbasepkg "frank-api/pkg/coinbase"
	intentpkg "frank-api/pkg/intent"
	llmpkg "frank-api/pkg/llm"
)

// ServiceContext wires configuration into the long-lived collaborators.
// Credentials are loaded once here and read-only afterwards.
type ServiceContext struct {
	Config config.Config

	LLMClient  *llmpkg.Client
	Classifier *intentpkg.Classifier
	Exchange   *coinbasepkg.Client
	Assistant  *assistantpkg.Assistant
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{Config: c}

	llmCfg := c.LLM.Value
	if llmCfg == nil {
		log.Fatal("llm config section is required")
	}
	// Conversational requests are single-attempt: a failed classification
	// degrades to the unknown intent instead of being retried.
	llmClient, err := llmpkg.NewClient(llmCfg,
		llmpkg.WithRetryHandler(llmpkg.NewRetryHandler(llmpkg.RetryConfig{})))
	if err != nil {
		log.Fatalf("failed to build llm client: %v", err)
	}
	svc.LLMClient = llmClient
	svc.Classifier = intentpkg.NewClassifier(llmClient)

	if exchangeCfg := c.Exchange.Value; exchangeCfg != nil {
		exchange, err := coinbasepkg.NewClientFromConfig(exchangeCfg)
		if err != nil {
			log.Fatalf("failed to build exchange client: %v", err)
		}
		svc.Exchange = exchange
	} else {
		// Public price endpoints only; account and order calls will report
		// missing credentials in their replies.
		svc.Exchange = coinbasepkg.NewClient()
	}

	svc.Assistant = assistantpkg.New(svc.Classifier, svc.Exchange, c.Assistant.Value)
	return svc
}
