package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"walletscope/internal/history"
	"walletscope/internal/model"
	"walletscope/internal/prices"
	"walletscope/internal/registry"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleChains(c *gin.Context) {
	c.JSON(http.StatusOK, registry.Describe())
}

func chainParam(c *gin.Context) (registry.Chain, bool) {
	chain, err := registry.Parse(c.Param("chain"))
	if err != nil {
		routeError(c)
		return "", false
	}
	return chain, true
}

func walletParam(c *gin.Context) (string, bool) {
	address := c.Query("address")
	if address == "" {
		missingAddress(c)
		return "", false
	}
	if !common.IsHexAddress(address) {
		invalidAddress(c)
		return "", false
	}
	return address, true
}

func (s *Server) handleInfo(c *gin.Context) {
	chain, ok := chainParam(c)
	if !ok {
		return
	}
	desc, err := registry.Lookup(chain)
	if err != nil {
		routeError(c)
		return
	}

	resp := gin.H{
		"chain":        chain,
		"id":           desc.ID,
		"token":        desc.Token,
		"wrappedToken": desc.WrappedToken,
	}
	if s.chains != nil {
		block, err := s.chains.LatestBlockNumber(c.Request.Context(), chain)
		if err != nil {
			s.logger.Warn("latest block lookup failed", zap.String("chain", string(chain)), zap.Error(err))
		} else {
			resp["latestBlock"] = block
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGas(c *gin.Context) {
	chain, ok := chainParam(c)
	if !ok {
		return
	}
	price, err := s.chains.GasPrice(c.Request.Context(), chain)
	if err != nil {
		s.logger.Error("gas price lookup failed", zap.String("chain", string(chain)), zap.Error(err))
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chain": chain, "gasPrice": price})
}

func (s *Server) handleTokenPrice(c *gin.Context) {
	chain, ok := chainParam(c)
	if !ok {
		return
	}
	address, ok := walletParam(c)
	if !ok {
		return
	}

	price, err := s.prices.TokenPrice(c.Request.Context(), chain, address)
	if err != nil && !errors.Is(err, prices.ErrUnavailable) {
		s.logger.Error("token price lookup failed", zap.String("chain", string(chain)), zap.Error(err))
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chain": chain, "address": address, "price": price})
}

func (s *Server) handleTokenPriceHistory(c *gin.Context) {
	chain, ok := chainParam(c)
	if !ok {
		return
	}
	address, ok := walletParam(c)
	if !ok {
		return
	}

	snapshots, err := s.prices.History(c.Request.Context(), chain, address)
	if err != nil && !errors.Is(err, prices.ErrUnavailable) {
		s.logger.Error("price history lookup failed", zap.String("chain", string(chain)), zap.Error(err))
		internalError(c)
		return
	}
	if snapshots == nil {
		snapshots = []model.PriceSnapshot{}
	}
	c.JSON(http.StatusOK, snapshots)
}

func (s *Server) handleTransactions(c *gin.Context) {
	chain, ok := chainParam(c)
	if !ok {
		return
	}
	wallet, ok := walletParam(c)
	if !ok {
		return
	}
	order := history.ParseOrder(c.Query("order"))

	if c.Query("simple") == "true" {
		txs, err := s.history.GetSimpleHistory(c.Request.Context(), chain, wallet, order)
		if err != nil {
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, txs)
		return
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			routeError(c)
			return
		}
		txs, hasMore, err := s.history.GetPagedHistory(c.Request.Context(), chain, wallet, page)
		if err != nil {
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"txs": txs, "hasNextPage": hasMore})
		return
	}

	txs, err := s.history.GetHistory(c.Request.Context(), chain, wallet, order)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, txs)
}

func (s *Server) handleFees(c *gin.Context) {
	chain, ok := chainParam(c)
	if !ok {
		return
	}
	wallet, ok := walletParam(c)
	if !ok {
		return
	}

	summary, err := s.history.GetFeeSummary(c.Request.Context(), chain, wallet)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, summary)
}
