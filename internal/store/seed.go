package store

import "agent_review_go_backend/internal/models"

// SeedPapers returns the demo catalogue of AI-agents papers.
func SeedPapers() []models.Paper {
	return []models.Paper{
		{
			ID:            "p1",
			Title:         "Multi-Agent Collaboration for RLHF: A Consensus Approach",
			Authors:       []string{"Li Wei", "Sarah Jenkins", "Andrew Ng"},
			Abstract:      "We propose a decentralized framework where multiple LLM agents critique each other's outputs to improve Reinforcement Learning from Human Feedback (RLHF) efficiency by 40%.",
			Category:      "Multi-Agent Systems",
			PublishedDate: "2024-03-15",
			Upvotes:       124,
			ReviewCount:   12,
			AvgScore:      4.5,
			HFURL:         "https://huggingface.co/papers/2403.xxxxx",
		},
		{
			ID:            "p2",
			Title:         "Generative Agents in Interactive Simulacra",
			Authors:       []string{"Joon Sung Park", "Joseph O'Brien", "C.J. Cai"},
			Abstract:      "Believable proxies of human behavior that can populate interactive applications. We demonstrate agents waking up, cooking breakfast, and going to work.",
			Category:      "Simulation",
			PublishedDate: "2023-08-10",
			Upvotes:       890,
			ReviewCount:   45,
			AvgScore:      4.8,
		},
		{
			ID:            "p3",
			Title:         "Chain-of-Thought Prompting Elicits Reasoning in Large Language Models",
			Authors:       []string{"Jason Wei", "Xuezhi Wang", "Dale Schuurmans"},
			Abstract:      "We explore how generating a chain of thought—a series of intermediate reasoning steps—significantly improves the ability of large language models to perform complex reasoning.",
			Category:      "Reasoning",
			PublishedDate: "2022-01-28",
			Upvotes:       2100,
			ReviewCount:   156,
			AvgScore:      4.9,
		},
		{
			ID:            "p4",
			Title:         "Toolformer: Language Models Can Teach Themselves to Use Tools",
			Authors:       []string{"Timo Schick", "Jane Doe", "Roberto Dessi"},
			Abstract:      "Language models can learn to use external tools via simple APIs. This paper introduces Toolformer, a model trained to decide which APIs to call, when to call them, and what arguments to pass.",
			Category:      "Tool Use",
			PublishedDate: "2023-02-09",
			Upvotes:       560,
			ReviewCount:   28,
			AvgScore:      4.2,
		},
		{
			ID:            "p5",
			Title:         "Voyager: An Open-Ended Embodied Agent with Large Language Models",
			Authors:       []string{"Guanzhi Wang", "Yuqe Xie", "Yunfan Jiang"},
			Abstract:      "Voyager is the first LLM-powered embodied lifelong learning agent in Minecraft that continuously explores the world, acquires diverse skills, and makes novel discoveries without human intervention.",
			Category:      "Embodied AI",
			PublishedDate: "2023-05-25",
			Upvotes:       730,
			ReviewCount:   34,
			AvgScore:      4.6,
		},
	}
}

// SeedUsers returns the demo reviewer roster. The first entry is the
// default user new sessions bind to.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:              "u1",
			Name:            "DeSci_Researcher_01",
			Email:           "researcher@desci.eth",
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
			Points:          150,
			ReputationScore: 92,
			Reviews:         []string{"p1", "p2"},
		},
		{
			ID:              "u2",
			Name:            "AgentSmith_AI",
			Email:           "matrix@desci.eth",
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Smith",
			Points:          4200,
			ReputationScore: 98,
			Reviews:         []string{"p1", "p2", "p3", "p4", "p5"},
		},
		{
			ID:              "u3",
			Name:            "PaperReader_3000",
			Email:           "reader@desci.eth",
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Annie",
			Points:          3150,
			ReputationScore: 95,
			Reviews:         []string{"p2", "p3", "p5"},
		},
		{
			ID:              "u4",
			Name:            "NeuroNet_Node",
			Email:           "neuro@desci.eth",
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Bob",
			Points:          890,
			ReputationScore: 88,
			Reviews:         []string{"p1"},
		},
		{
			ID:              "u5",
			Name:            "CryptoScholar",
			Email:           "crypto@desci.eth",
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Jack",
			Points:          560,
			ReputationScore: 85,
			Reviews:         []string{"p4", "p5"},
		},
		{
			ID:              "u6",
			Name:            "OpenScience_Dao",
			Email:           "dao@desci.eth",
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Molly",
			Points:          210,
			ReputationScore: 78,
			Reviews:         []string{"p3"},
		},
	}
}
